package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/models"
	"go-restaurant-orders/repository"
)

type ReviewController struct {
	reviews *repository.ReviewRepository
}

func NewReviewController(reviews *repository.ReviewRepository) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (rc *ReviewController) CreateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var body struct {
			User     string `json:"user"`
			MenuItem string `json:"menuItem"`
			Rating   *int   `json:"rating"`
			Comment  string `json:"comment"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondBindError(c)
			return
		}

		if body.User == "" || body.MenuItem == "" || body.Rating == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User, menu item, and rating are required"})
			return
		}
		userID, err := primitive.ObjectIDFromHex(body.User)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing user ID"})
			return
		}
		menuItemID, err := primitive.ObjectIDFromHex(body.MenuItem)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing menu item ID"})
			return
		}
		if *body.Rating < 1 || *body.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be an integer between 1 and 5"})
			return
		}

		now := time.Now().UTC()
		review := models.Review{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			MenuItemID: menuItemID,
			Rating:     *body.Rating,
			Comment:    body.Comment,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		created, err := rc.reviews.Insert(ctx, review)
		if err != nil {
			respondError(c, apperrors.NewStore("Error creating review", err))
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (rc *ReviewController) GetReviewsByMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		menuItemID, err := primitive.ObjectIDFromHex(c.Param("menuItemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item ID"})
			return
		}

		reviews, err := rc.reviews.FindByMenuItem(ctx, menuItemID)
		if err != nil {
			respondError(c, apperrors.NewStore("Error retrieving reviews", err))
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func (rc *ReviewController) DeleteReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review ID"})
			return
		}

		deleted, err := rc.reviews.Delete(ctx, id)
		if err != nil {
			respondError(c, apperrors.NewStore("Error deleting review", err))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
