package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"

	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// OrderStatuses is the set of legal status labels. Any transition between
// labels in this set is accepted; no transition graph is enforced.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem captures the unit price at order time, decoupled from the
// catalog's live price.
type OrderItem struct {
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menuItemId"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Price      float64            `bson:"price" json:"price"`

	// MenuItemDetails is filled on reads by an explicit joined fetch.
	MenuItemDetails *MenuItem `bson:"-" json:"menuItemDetails,omitempty"`
}

type DeliveryAddress struct {
	Street string `bson:"street" json:"street"`
	City   string `bson:"city" json:"city"`
	State  string `bson:"state,omitempty" json:"state,omitempty"`
	Zip    string `bson:"zip" json:"zip"`
}

// Order is immutable after creation except for its status.
type Order struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"totalAmount"`
	Status          string             `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	DeliveryAddress *DeliveryAddress   `bson:"delivery_address,omitempty" json:"deliveryAddress,omitempty"`
	DineIn          bool               `bson:"dine_in" json:"dineIn"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`

	// UserDetails is filled on reads by an explicit joined fetch.
	UserDetails *UserSummary `bson:"-" json:"userDetails,omitempty"`
}
