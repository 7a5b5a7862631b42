package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-restaurant-orders/models"
	"go-restaurant-orders/services"
)

// OrderManager is the slice of the order service the HTTP layer consumes.
type OrderManager interface {
	Submit(ctx context.Context, in services.SubmitOrderInput) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, id string, status string) (*models.Order, error)
}

type OrderController struct {
	orders OrderManager
	hub    *Hub
}

func NewOrderController(orders OrderManager, hub *Hub) *OrderController {
	return &OrderController{orders: orders, hub: hub}
}

func (oc *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var in services.SubmitOrderInput
		if err := c.BindJSON(&in); err != nil {
			respondBindError(c)
			return
		}

		order, err := oc.orders.Submit(ctx, in)
		if err != nil {
			respondError(c, err)
			return
		}
		if oc.hub != nil {
			oc.hub.Broadcast("newOrder", order)
		}
		c.JSON(http.StatusCreated, order)
	}
}

func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := oc.orders.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orders, err := oc.orders.List(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (oc *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var body struct {
			Status string `json:"status"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondBindError(c)
			return
		}

		order, err := oc.orders.SetStatus(ctx, c.Param("id"), body.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		if oc.hub != nil {
			oc.hub.Broadcast("orderStatus", order)
		}
		c.JSON(http.StatusOK, order)
	}
}
