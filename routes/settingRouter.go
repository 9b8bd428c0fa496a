package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func SettingRoutes(incomingRoutes *gin.Engine, sc *controllers.SettingController) {
	incomingRoutes.GET("/settings", sc.GetSettings())
	incomingRoutes.PUT("/settings", middleware.RequireWriter(), sc.UpsertSetting())
}
