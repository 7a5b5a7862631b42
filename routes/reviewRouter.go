package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-orders/controllers"
)

func ReviewRoutes(incomingRoutes *gin.Engine, reviewController *controllers.ReviewController) {
	incomingRoutes.POST("/api/reviews", reviewController.CreateReview())
	incomingRoutes.GET("/api/reviews/menuitem/:menuItemId", reviewController.GetReviewsByMenuItem())
	incomingRoutes.DELETE("/api/reviews/:id", reviewController.DeleteReview())
}
