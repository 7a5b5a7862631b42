package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/models"
	"go-restaurant-orders/storage"
)

// assetFolder is the asset-store folder menu item photos are uploaded under.
const assetFolder = "menuItems"

type MenuItemStore interface {
	Insert(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CategoryStore interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CatalogService keeps the menu-item record store and the asset store
// consistent across partial failures. The ordering discipline: an asset is
// always stored before any record references it, and a referenced asset is
// only discarded after its replacement is confirmed stored.
type CatalogService struct {
	menuItems  MenuItemStore
	categories CategoryStore
	assets     storage.AssetStore
	logger     *zap.Logger
}

func NewCatalogService(menuItems MenuItemStore, categories CategoryStore, assets storage.AssetStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		menuItems:  menuItems,
		categories: categories,
		assets:     assets,
		logger:     logger,
	}
}

type CreateMenuItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  string   `json:"category"`
	Available   *bool    `json:"available"`
	Image       string   `json:"image"`
}

type UpdateMenuItemInput struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *float64      `json:"price"`
	CategoryID  *string       `json:"category"`
	Available   *bool         `json:"available"`
	Image       *models.Image `json:"image"`
}

func (s *CatalogService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menuItems.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStore("Error retrieving menu items", err)
	}
	return items, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid menu item ID")
	}
	item, err := s.menuItems.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.NewStore("Error retrieving menu item", err)
	}
	if item == nil {
		return nil, apperrors.NewNotFound("Menu item not found")
	}
	return item, nil
}

// Create validates shape and referential integrity first, uploads the image,
// and only then persists the record. An upload failure leaves no record; a
// record failure after a successful upload leaves an orphaned asset, which is
// logged and accepted.
func (s *CatalogService) Create(ctx context.Context, in CreateMenuItemInput) (*models.MenuItem, error) {
	if in.Name == "" || in.Price == nil || in.CategoryID == "" || in.Image == "" {
		return nil, apperrors.NewValidation("All required fields must be filled")
	}
	categoryID, err := primitive.ObjectIDFromHex(in.CategoryID)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid category ID")
	}
	if in.Available == nil {
		return nil, apperrors.NewValidation("Available field must be true or false")
	}
	if *in.Price <= 0 {
		return nil, apperrors.NewValidation("Price must be a positive number")
	}

	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, apperrors.NewStore("Error creating menu item", err)
	}
	if !exists {
		return nil, apperrors.NewReferential("Invalid category")
	}

	image, err := s.assets.Upload(ctx, in.Image, assetFolder)
	if err != nil {
		return nil, apperrors.NewStore("Error uploading image", err)
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		CategoryID:  categoryID,
		Available:   *in.Available,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.menuItems.Insert(ctx, item)
	if err != nil {
		// The uploaded asset is now unreferenced. No rollback; reconciled
		// out-of-band.
		s.logger.Warn("orphaned asset after failed menu item insert",
			zap.String("public_id", image.PublicID),
			zap.Error(err))
		return nil, apperrors.NewStore("Error creating menu item", err)
	}
	return created, nil
}

// Update stages a replacement asset before discarding the old one. If the
// record patch fails after the swap, the record keeps referencing the old,
// already-deleted asset; that inconsistency is logged, not rolled back.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateMenuItemInput) (*models.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid menu item ID")
	}
	if in.Image != nil && (in.Image.PublicID == "" || in.Image.URL == "") {
		return nil, apperrors.NewValidation("Invalid image data")
	}

	var categoryID *primitive.ObjectID
	if in.CategoryID != nil {
		parsed, err := primitive.ObjectIDFromHex(*in.CategoryID)
		if err != nil {
			return nil, apperrors.NewValidation("Invalid category ID")
		}
		categoryID = &parsed
	}
	if in.Price != nil && *in.Price <= 0 {
		return nil, apperrors.NewValidation("Price must be a positive number")
	}

	if categoryID != nil {
		exists, err := s.categories.Exists(ctx, *categoryID)
		if err != nil {
			return nil, apperrors.NewStore("Error updating menu item", err)
		}
		if !exists {
			return nil, apperrors.NewReferential("Invalid category")
		}
	}

	item, err := s.menuItems.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.NewStore("Error updating menu item", err)
	}
	if item == nil {
		return nil, apperrors.NewNotFound("Menu item not found")
	}

	update := models.MenuItemUpdate{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  categoryID,
		Available:   in.Available,
	}

	if in.Image != nil {
		newImage, err := s.assets.Upload(ctx, in.Image.URL, assetFolder)
		if err != nil {
			return nil, apperrors.NewStore("Error uploading image", err)
		}
		// The replacement is stored; the previous asset can go. A failed
		// delete never blocks the record update.
		if item.Image != nil {
			if err := s.assets.Delete(ctx, item.Image.PublicID); err != nil {
				s.logger.Warn("failed to delete replaced asset",
					zap.String("public_id", item.Image.PublicID),
					zap.Error(err))
			}
		}
		update.Image = newImage
	}

	updated, err := s.menuItems.Update(ctx, objectID, update)
	if err != nil {
		if update.Image != nil {
			s.logger.Warn("menu item record update failed after asset swap",
				zap.String("new_public_id", update.Image.PublicID),
				zap.Error(err))
		}
		return nil, apperrors.NewStore("Error updating menu item", err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("Menu item not found")
	}
	return updated, nil
}

// Delete removes the asset best-effort first, then the record. An asset-store
// failure never leaves the record undeletable.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewValidation("Invalid menu item ID")
	}

	item, err := s.menuItems.FindByID(ctx, objectID)
	if err != nil {
		return apperrors.NewStore("Error deleting menu item", err)
	}
	if item == nil {
		return apperrors.NewNotFound("Menu item not found")
	}

	if item.Image != nil {
		if err := s.assets.Delete(ctx, item.Image.PublicID); err != nil {
			s.logger.Warn("failed to delete asset for removed menu item",
				zap.String("public_id", item.Image.PublicID),
				zap.Error(err))
		}
	}

	deleted, err := s.menuItems.Delete(ctx, objectID)
	if err != nil {
		return apperrors.NewStore("Error deleting menu item", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Menu item not found")
	}
	return nil
}
