package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
)

type Address struct {
	Street string `bson:"street" json:"street"`
	City   string `bson:"city" json:"city"`
	State  string `bson:"state,omitempty" json:"state,omitempty"`
	Zip    string `bson:"zip" json:"zip"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     *string            `bson:"email" json:"email" validate:"required,email"`
	Password  *string            `bson:"password" json:"password,omitempty" validate:"required,min=8"`
	Role      *string            `bson:"role" json:"role" validate:"required,eq=customer|eq=admin|eq=staff"`
	Phone     *string            `bson:"phone" json:"phone" validate:"required"`
	Address   []Address          `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserSummary is the projection of a user embedded in order reads. It never
// carries the password hash.
type UserSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  *string            `bson:"name" json:"name"`
	Email *string            `bson:"email" json:"email"`
	Phone *string            `bson:"phone" json:"phone,omitempty"`
}
