package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, oc *controllers.OrderController) {
	incomingRoutes.GET("/orders", oc.GetOrders())
	incomingRoutes.GET("/orders/:order_id", oc.GetOrder())
	incomingRoutes.GET("/orders/:order_id/proof", oc.GetProof())
	incomingRoutes.PATCH("/orders/:order_id/status", middleware.RequireWriter(), oc.SetOrderStatus())
	incomingRoutes.POST("/orders/:order_id/advance", middleware.RequireWriter(), oc.AdvanceOrder())
	incomingRoutes.POST("/orders/:order_id/cancel", middleware.RequireWriter(), oc.CancelOrder())
	incomingRoutes.PATCH("/orders/:order_id/table", middleware.RequireWriter(), oc.SetTable())
	incomingRoutes.POST("/orders/:order_id/proof", middleware.RequireWriter(), oc.UploadProof())
}
