package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/models"
	"go-restaurant-orders/repository"
)

var validate = validator.New()

type CategoryController struct {
	categories *repository.CategoryRepository
}

func NewCategoryController(categories *repository.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

func (cc *CategoryController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			respondBindError(c)
			return
		}
		if err := validate.Struct(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
			return
		}

		category.ID = primitive.NewObjectID()
		now := time.Now().UTC()
		category.CreatedAt = now
		category.UpdatedAt = now

		created, err := cc.categories.Insert(ctx, category)
		if err != nil {
			respondError(c, apperrors.NewStore("Error creating category", err))
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (cc *CategoryController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		categories, err := cc.categories.FindAll(ctx)
		if err != nil {
			respondError(c, apperrors.NewStore("Error retrieving categories", err))
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (cc *CategoryController) GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		category, err := cc.categories.FindByID(ctx, id)
		if err != nil {
			respondError(c, apperrors.NewStore("Error retrieving category", err))
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func (cc *CategoryController) UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		var body struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondBindError(c)
			return
		}
		if body.Name != nil && *body.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
			return
		}

		category, err := cc.categories.Update(ctx, id, body.Name, body.Description)
		if err != nil {
			respondError(c, apperrors.NewStore("Error updating category", err))
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes the category only; menu items referencing it are
// deliberately left untouched.
func (cc *CategoryController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		deleted, err := cc.categories.Delete(ctx, id)
		if err != nil {
			respondError(c, apperrors.NewStore("Error deleting category", err))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
