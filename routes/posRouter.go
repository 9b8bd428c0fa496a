package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func POSRoutes(incomingRoutes *gin.Engine, pc *controllers.POSController) {
	incomingRoutes.GET("/pos/menus", pc.GetPOSMenus())
	incomingRoutes.POST("/pos/orders", middleware.RequireWriter(), pc.CreateOrder())
}
