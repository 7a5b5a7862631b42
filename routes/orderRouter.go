package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-orders/controllers"
)

func OrderRoutes(incomingRoutes *gin.Engine, orderController *controllers.OrderController) {
	incomingRoutes.POST("/api/orders", orderController.CreateOrder())
	incomingRoutes.GET("/api/orders", orderController.GetOrders())
	incomingRoutes.GET("/api/orders/:id", orderController.GetOrder())
	incomingRoutes.PUT("/api/orders/:id", orderController.UpdateOrderStatus())
}
