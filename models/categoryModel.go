package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is referenced by menu items. Deleting a category never cascades to
// the items that reference it.
type Category struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
