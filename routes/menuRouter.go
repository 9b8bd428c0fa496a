package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, mc *controllers.MenuController) {
	incomingRoutes.GET("/menus", mc.GetMenus())
	incomingRoutes.GET("/menus/:menu_id", mc.GetMenu())
	incomingRoutes.POST("/menus", middleware.RequireWriter(), mc.CreateMenu())
	incomingRoutes.PATCH("/menus/:menu_id", middleware.RequireWriter(), mc.UpdateMenu())
	incomingRoutes.GET("/menu-categories", mc.GetCategories())
	incomingRoutes.POST("/menu-categories", middleware.RequireWriter(), mc.CreateCategory())
}
