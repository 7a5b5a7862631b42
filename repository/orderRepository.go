package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-restaurant-orders/models"
)

type OrderRepository struct {
	collection *mongo.Collection
	users      *mongo.Collection
	menuItems  *mongo.Collection
}

func NewOrderRepository(collection, users, menuItems *mongo.Collection) *OrderRepository {
	return &OrderRepository{collection: collection, users: users, menuItems: menuItems}
}

func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (*models.Order, error) {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.attachDetails(ctx, &order, map[primitive.ObjectID]*models.MenuItem{})
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	menuItems := map[primitive.ObjectID]*models.MenuItem{}
	for i := range orders {
		r.attachDetails(ctx, &orders[i], menuItems)
	}
	return orders, nil
}

// UpdateStatus persists the new status and returns the updated order, or nil
// if no order matches.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// attachDetails performs the explicit joined fetches for a single order: the
// ordering user's summary and each line item's menu item. Missing references
// are left nil rather than failing the read.
func (r *OrderRepository) attachDetails(ctx context.Context, order *models.Order, menuItems map[primitive.ObjectID]*models.MenuItem) {
	var user models.UserSummary
	if err := r.users.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err == nil {
		order.UserDetails = &user
	}

	for i := range order.Items {
		id := order.Items[i].MenuItemID
		item, ok := menuItems[id]
		if !ok {
			var decoded models.MenuItem
			if err := r.menuItems.FindOne(ctx, bson.M{"_id": id}).Decode(&decoded); err == nil {
				item = &decoded
			}
			menuItems[id] = item
		}
		order.Items[i].MenuItemDetails = item
	}
}
