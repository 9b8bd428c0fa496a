package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func ReceiptRoutes(incomingRoutes *gin.Engine, rc *controllers.ReceiptController) {
	incomingRoutes.POST("/orders/:order_id/receipt", middleware.RequireWriter(), rc.QueueDispatch())
	incomingRoutes.GET("/receiptsByDates/:startDate/:endDate", rc.GetDispatchesByDate())
}
