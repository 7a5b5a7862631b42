package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"
)

// MenuItemRoutes mounts the catalog surface. Mutations require an admin or
// staff credential; reads are open.
func MenuItemRoutes(incomingRoutes *gin.Engine, menuItemController *controllers.MenuItemController) {
	incomingRoutes.GET("/api/menuitems", menuItemController.GetMenuItems())
	incomingRoutes.GET("/api/menuitems/:id", menuItemController.GetMenuItem())

	auth := middleware.Authentication()
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleStaff)
	incomingRoutes.POST("/api/menuitems", auth, staffOnly, menuItemController.CreateMenuItem())
	incomingRoutes.PUT("/api/menuitems/:id", auth, staffOnly, menuItemController.UpdateMenuItem())
	incomingRoutes.DELETE("/api/menuitems/:id", auth, staffOnly, menuItemController.DeleteMenuItem())
}
