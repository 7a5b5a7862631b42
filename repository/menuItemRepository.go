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

type MenuItemRepository struct {
	collection *mongo.Collection
	categories *mongo.Collection
}

func NewMenuItemRepository(collection, categories *mongo.Collection) *MenuItemRepository {
	return &MenuItemRepository{collection: collection, categories: categories}
}

func (r *MenuItemRepository) Insert(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.attachCategory(ctx, &item)
	return &item, nil
}

func (r *MenuItemRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	// One category fetch per distinct reference instead of an implicit
	// populate.
	categories := map[primitive.ObjectID]*models.Category{}
	for i := range items {
		cat, ok := categories[items[i].CategoryID]
		if !ok {
			cat = r.fetchCategory(ctx, items[i].CategoryID)
			categories[items[i].CategoryID] = cat
		}
		items[i].CategoryDetails = cat
	}
	return items, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
	var updateObj primitive.D
	if update.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *update.Price})
	}
	if update.CategoryID != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *update.CategoryID})
	}
	if update.Available != nil {
		updateObj = append(updateObj, bson.E{Key: "available", Value: *update.Available})
	}
	if update.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: *update.Image})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now().UTC()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.MenuItem
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.D{{Key: "$set", Value: updateObj}},
		opts,
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.attachCategory(ctx, &item)
	return &item, nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *MenuItemRepository) attachCategory(ctx context.Context, item *models.MenuItem) {
	item.CategoryDetails = r.fetchCategory(ctx, item.CategoryID)
}

func (r *MenuItemRepository) fetchCategory(ctx context.Context, id primitive.ObjectID) *models.Category {
	var category models.Category
	if err := r.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil
	}
	return &category
}
