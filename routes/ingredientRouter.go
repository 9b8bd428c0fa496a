package routes

import (
	"warmindo-pos/controllers"
	"warmindo-pos/middleware"

	"github.com/gin-gonic/gin"
)

func IngredientRoutes(incomingRoutes *gin.Engine, ic *controllers.IngredientController) {
	incomingRoutes.GET("/ingredients", ic.GetIngredients())
	incomingRoutes.POST("/ingredients", middleware.RequireWriter(), ic.CreateIngredient())
	incomingRoutes.PATCH("/ingredients/:ingredient_id", middleware.RequireWriter(), ic.UpdateIngredient())
	incomingRoutes.GET("/ingredients/:ingredient_id/movements", ic.GetMovements())
	incomingRoutes.POST("/ingredients/:ingredient_id/movements", middleware.RequireWriter(), ic.RecordMovement())
}
