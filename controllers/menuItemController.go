package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-restaurant-orders/models"
	"go-restaurant-orders/services"
)

// CatalogManager is the slice of the catalog service the HTTP layer consumes.
type CatalogManager interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, in services.CreateMenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id string, in services.UpdateMenuItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type MenuItemController struct {
	catalog CatalogManager
}

func NewMenuItemController(catalog CatalogManager) *MenuItemController {
	return &MenuItemController{catalog: catalog}
}

func (mc *MenuItemController) GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := mc.catalog.List(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (mc *MenuItemController) GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		item, err := mc.catalog.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (mc *MenuItemController) CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var in services.CreateMenuItemInput
		if err := c.BindJSON(&in); err != nil {
			respondBindError(c)
			return
		}

		item, err := mc.catalog.Create(ctx, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func (mc *MenuItemController) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var in services.UpdateMenuItemInput
		if err := c.BindJSON(&in); err != nil {
			respondBindError(c)
			return
		}

		item, err := mc.catalog.Update(ctx, c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func (mc *MenuItemController) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := mc.catalog.Delete(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
	}
}
