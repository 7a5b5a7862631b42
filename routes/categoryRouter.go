package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"
)

func CategoryRoutes(incomingRoutes *gin.Engine, categoryController *controllers.CategoryController) {
	incomingRoutes.GET("/api/categories", categoryController.GetCategories())
	incomingRoutes.GET("/api/categories/:id", categoryController.GetCategory())

	auth := middleware.Authentication()
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleStaff)
	incomingRoutes.POST("/api/categories", auth, staffOnly, categoryController.CreateCategory())
	incomingRoutes.PUT("/api/categories/:id", auth, staffOnly, categoryController.UpdateCategory())
	incomingRoutes.DELETE("/api/categories/:id", auth, staffOnly, categoryController.DeleteCategory())
}
