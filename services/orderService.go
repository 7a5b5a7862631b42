package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/models"
)

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
}

// OrderService validates order submissions and gates status changes. Line-item
// menu references are format-checked only, and totalAmount is trusted as
// supplied; neither is re-verified against the record store.
type OrderService struct {
	orders OrderStore
	logger *zap.Logger
}

func NewOrderService(orders OrderStore, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

type OrderItemInput struct {
	MenuItemID string   `json:"menuItemId"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
}

type SubmitOrderInput struct {
	User            string                  `json:"user"`
	Items           []OrderItemInput        `json:"items"`
	TotalAmount     *float64                `json:"totalAmount"`
	PaymentMethod   string                  `json:"paymentMethod"`
	DeliveryAddress *models.DeliveryAddress `json:"deliveryAddress"`
	DineIn          bool                    `json:"dineIn"`
}

// Submit runs the validation chain in a fixed order, each step an independent
// failure, then persists the order in pending status.
func (s *OrderService) Submit(ctx context.Context, in SubmitOrderInput) (*models.Order, error) {
	if in.User == "" || in.Items == nil || in.TotalAmount == nil || in.PaymentMethod == "" {
		return nil, apperrors.NewValidation("User, items, totalAmount, and paymentMethod are required")
	}

	userID, err := primitive.ObjectIDFromHex(in.User)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid user ID")
	}

	if len(in.Items) == 0 {
		return nil, apperrors.NewValidation("Items must be a non-empty array")
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		menuItemID, err := primitive.ObjectIDFromHex(item.MenuItemID)
		if err != nil {
			return nil, apperrors.NewValidation("Invalid menu item ID")
		}
		if item.Quantity == nil || *item.Quantity <= 0 {
			return nil, apperrors.NewValidation("Quantity must be a positive integer")
		}
		if item.Price == nil || *item.Price <= 0 {
			return nil, apperrors.NewValidation("Price must be a positive number")
		}
		items = append(items, models.OrderItem{
			MenuItemID: menuItemID,
			Quantity:   *item.Quantity,
			Price:      *item.Price,
		})
	}

	if *in.TotalAmount <= 0 {
		return nil, apperrors.NewValidation("Total amount must be a positive number")
	}

	if in.PaymentMethod != models.PaymentMethodCash && in.PaymentMethod != models.PaymentMethodCard {
		return nil, apperrors.NewValidation("Payment method must be either cash or card")
	}

	if !in.DineIn {
		addr := in.DeliveryAddress
		if addr == nil || addr.Street == "" || addr.City == "" || addr.Zip == "" {
			return nil, apperrors.NewValidation("Delivery address is required for non-dine-in orders")
		}
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     *in.TotalAmount,
		Status:          models.OrderStatusPending,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		DineIn:          in.DineIn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, apperrors.NewStore("Error placing order", err)
	}
	s.logger.Info("order placed",
		zap.String("order_id", created.ID.Hex()),
		zap.Float64("total_amount", created.TotalAmount))
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid order ID")
	}
	order, err := s.orders.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.NewStore("Error retrieving order", err)
	}
	if order == nil {
		return nil, apperrors.NewNotFound("Order not found")
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStore("Error retrieving orders", err)
	}
	return orders, nil
}

// SetStatus accepts any of the four legal status labels and persists it
// unconditionally. The label is checked before the order's existence, so an
// unknown label is a 400 even for an unknown order.
func (s *OrderService) SetStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, apperrors.NewValidation("Invalid status value")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid order ID")
	}
	order, err := s.orders.UpdateStatus(ctx, objectID, status)
	if err != nil {
		return nil, apperrors.NewStore("Error updating order status", err)
	}
	if order == nil {
		return nil, apperrors.NewNotFound("Order not found")
	}
	s.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", status))
	return order, nil
}
