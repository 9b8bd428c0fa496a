package routes

import (
	"warmindo-pos/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, uc *controllers.UserController, hub *controllers.Hub) {
	incomingRoutes.POST("/users/signup", uc.SignUp())
	incomingRoutes.POST("/users/login", uc.Login())
	incomingRoutes.GET("/ws", hub.Handle())
}

func ProtectedUserRoutes(incomingRoutes *gin.Engine, uc *controllers.UserController) {
	incomingRoutes.GET("/users", uc.GetUsers())
	incomingRoutes.GET("/users/:user_id", uc.GetUser())
	incomingRoutes.PATCH("/users/:user_id", uc.UpdateUser())
}
