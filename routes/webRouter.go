package routes

import (
	"warmindo-pos/controllers"

	"github.com/gin-gonic/gin"
)

// WebRoutes serves the customer ordering site: menu browsing and order
// placement without a staff login.
func WebRoutes(incomingRoutes *gin.Engine, pc *controllers.POSController) {
	incomingRoutes.GET("/web/menus", pc.GetPOSMenus())
	incomingRoutes.POST("/web/orders", pc.CreateWebOrder())
}
