package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image references a stored asset in the asset store. A persisted menu item's
// image always points at an asset that exists; the upload happens before the
// record write.
type Image struct {
	PublicID string `bson:"public_id" json:"public_id" validate:"required"`
	URL      string `bson:"url" json:"url" validate:"required"`
}

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	CategoryID  primitive.ObjectID `bson:"category" json:"category"`
	Available   bool               `bson:"available" json:"available"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	// CategoryDetails is filled on reads by an explicit joined fetch.
	CategoryDetails *Category `bson:"-" json:"category_details,omitempty"`
}

// MenuItemUpdate carries the patchable fields of a menu item. Nil fields are
// left untouched.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *primitive.ObjectID
	Available   *bool
	Image       *Image
}
