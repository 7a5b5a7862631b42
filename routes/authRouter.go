package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-orders/controllers"
)

func AuthRoutes(incomingRoutes *gin.Engine, userController *controllers.UserController) {
	incomingRoutes.POST("/api/auth/register", userController.Register())
	incomingRoutes.POST("/api/auth/login", userController.Login())
}
