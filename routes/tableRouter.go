package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine, tc *controllers.TableController) {
	incomingRoutes.GET("/tables", tc.GetTables())
	incomingRoutes.POST("/tables", middleware.RequireWriter(), tc.CreateTable())
	incomingRoutes.PATCH("/tables/:table_id", middleware.RequireWriter(), tc.UpdateTable())
}
