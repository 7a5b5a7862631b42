package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"go-restaurant-orders/apperrors"
	"go-restaurant-orders/models"
)

func strPtr(s string) *string       { return &s }
func boolPtr(b bool) *bool          { return &b }
func float64Ptr(f float64) *float64 { return &f }

type mockMenuItemStore struct {
	InsertFunc   func(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	FindAllFunc  func(ctx context.Context) ([]models.MenuItem, error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) (bool, error)

	calls *[]string
}

func (m *mockMenuItemStore) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockMenuItemStore) Insert(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	m.record("record.insert")
	return m.InsertFunc(ctx, item)
}

func (m *mockMenuItemStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockMenuItemStore) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockMenuItemStore) Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
	m.record("record.update")
	return m.UpdateFunc(ctx, id, update)
}

func (m *mockMenuItemStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	m.record("record.delete")
	return m.DeleteFunc(ctx, id)
}

type mockCategoryStore struct {
	ExistsFunc func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (m *mockCategoryStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

type mockAssetStore struct {
	UploadFunc func(ctx context.Context, payload string, folder string) (*models.Image, error)
	DeleteFunc func(ctx context.Context, publicID string) error

	calls *[]string
}

func (m *mockAssetStore) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockAssetStore) Upload(ctx context.Context, payload string, folder string) (*models.Image, error) {
	m.record("asset.upload")
	return m.UploadFunc(ctx, payload, folder)
}

func (m *mockAssetStore) Delete(ctx context.Context, publicID string) error {
	m.record("asset.delete:" + publicID)
	return m.DeleteFunc(ctx, publicID)
}

func existingCategories() *mockCategoryStore {
	return &mockCategoryStore{
		ExistsFunc: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			return true, nil
		},
	}
}

func validCreateInput() CreateMenuItemInput {
	return CreateMenuItemInput{
		Name:       "Pizza",
		Price:      float64Ptr(9.99),
		CategoryID: primitive.NewObjectID().Hex(),
		Available:  boolPtr(true),
		Image:      "data:image/png;base64,abc123",
	}
}

func TestCreateMenuItem_MissingRequiredFields(t *testing.T) {
	cases := map[string]func(*CreateMenuItemInput){
		"no name":     func(in *CreateMenuItemInput) { in.Name = "" },
		"no price":    func(in *CreateMenuItemInput) { in.Price = nil },
		"no category": func(in *CreateMenuItemInput) { in.CategoryID = "" },
		"no image":    func(in *CreateMenuItemInput) { in.Image = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			var calls []string
			assets := &mockAssetStore{calls: &calls}
			items := &mockMenuItemStore{calls: &calls}
			svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

			in := validCreateInput()
			mutate(&in)

			_, err := svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.EqualError(t, err, "All required fields must be filled")
			assert.Empty(t, calls, "no store call may precede validation")
		})
	}
}

func TestCreateMenuItem_InvalidCategoryID(t *testing.T) {
	svc := NewCatalogService(&mockMenuItemStore{}, existingCategories(), &mockAssetStore{}, zap.NewNop())

	in := validCreateInput()
	in.CategoryID = "not-a-hex-id"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "Invalid category ID")
}

func TestCreateMenuItem_AvailableMustBeBoolean(t *testing.T) {
	svc := NewCatalogService(&mockMenuItemStore{}, existingCategories(), &mockAssetStore{}, zap.NewNop())

	in := validCreateInput()
	in.Available = nil

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.EqualError(t, err, "Available field must be true or false")
}

func TestCreateMenuItem_NonPositivePrice(t *testing.T) {
	svc := NewCatalogService(&mockMenuItemStore{}, existingCategories(), &mockAssetStore{}, zap.NewNop())

	in := validCreateInput()
	in.Price = float64Ptr(-2.50)

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.EqualError(t, err, "Price must be a positive number")
}

func TestCreateMenuItem_UnknownCategory(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{calls: &calls}
	items := &mockMenuItemStore{calls: &calls}
	categories := &mockCategoryStore{
		ExistsFunc: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			return false, nil
		},
	}
	svc := NewCatalogService(items, categories, assets, zap.NewNop())

	_, err := svc.Create(context.Background(), validCreateInput())
	require.Error(t, err)
	assert.True(t, apperrors.IsReferential(err))
	assert.EqualError(t, err, "Invalid category")
	assert.Empty(t, calls, "a dangling category reference must not reach either store")
}

func TestCreateMenuItem_UploadFailureLeavesNoRecord(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{
		calls: &calls,
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			return nil, errors.New("connection reset")
		},
	}
	items := &mockMenuItemStore{calls: &calls}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	_, err := svc.Create(context.Background(), validCreateInput())
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsNotFound(err))
	assert.Equal(t, []string{"asset.upload"}, calls, "upload failure must abort before any record write")
}

func TestCreateMenuItem_Success(t *testing.T) {
	var calls []string
	stored := &models.Image{PublicID: "menuItems/abc", URL: "https://cdn.example.com/menuItems/abc.png"}
	assets := &mockAssetStore{
		calls: &calls,
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			assert.Equal(t, "menuItems", folder)
			return stored, nil
		},
	}
	var inserted models.MenuItem
	items := &mockMenuItemStore{
		calls: &calls,
		InsertFunc: func(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
			inserted = item
			return &item, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	in := validCreateInput()
	item, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"asset.upload", "record.insert"}, calls)
	require.NotNil(t, item.Image)
	assert.Equal(t, stored.URL, item.Image.URL, "the store-reported URL is persisted verbatim")
	assert.Equal(t, stored.PublicID, item.Image.PublicID)
	assert.Equal(t, 9.99, inserted.Price)
	assert.True(t, inserted.Available)
	assert.False(t, inserted.ID.IsZero())
}

func TestCreateMenuItem_InsertFailureAfterUpload(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{
		calls: &calls,
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			return &models.Image{PublicID: "menuItems/orphan", URL: "https://cdn.example.com/orphan.png"}, nil
		},
	}
	items := &mockMenuItemStore{
		calls: &calls,
		InsertFunc: func(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
			return nil, errors.New("write concern failure")
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	_, err := svc.Create(context.Background(), validCreateInput())
	require.Error(t, err)
	// The orphaned asset is accepted: create never issues an asset delete.
	assert.Equal(t, []string{"asset.upload", "record.insert"}, calls)
}

func menuItemOnFile(image *models.Image) *models.MenuItem {
	return &models.MenuItem{
		ID:         primitive.NewObjectID(),
		Name:       "Pizza",
		Price:      9.99,
		CategoryID: primitive.NewObjectID(),
		Available:  true,
		Image:      image,
	}
}

func TestUpdateMenuItem_InvalidImagePair(t *testing.T) {
	svc := NewCatalogService(&mockMenuItemStore{}, existingCategories(), &mockAssetStore{}, zap.NewNop())

	for _, image := range []*models.Image{
		{PublicID: "menuItems/abc"},
		{URL: "https://cdn.example.com/abc.png"},
		{},
	} {
		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateMenuItemInput{Image: image})
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid image data")
	}
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	items := &mockMenuItemStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return nil, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), &mockAssetStore{}, zap.NewNop())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateMenuItemInput{Name: strPtr("Calzone")})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "Menu item not found")
}

func TestUpdateMenuItem_ImageSwapOrdering(t *testing.T) {
	var calls []string
	oldImage := &models.Image{PublicID: "menuItems/old", URL: "https://cdn.example.com/old.png"}
	newStored := &models.Image{PublicID: "menuItems/new", URL: "https://cdn.example.com/new.png"}

	assets := &mockAssetStore{
		calls: &calls,
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			return newStored, nil
		},
		DeleteFunc: func(ctx context.Context, publicID string) error {
			return nil
		},
	}
	onFile := menuItemOnFile(oldImage)
	var patched models.MenuItemUpdate
	items := &mockMenuItemStore{
		calls: &calls,
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		UpdateFunc: func(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
			patched = update
			updated := *onFile
			updated.Image = update.Image
			return &updated, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	item, err := svc.Update(context.Background(), onFile.ID.Hex(), UpdateMenuItemInput{
		Image: &models.Image{PublicID: "client-supplied", URL: "https://staging.example.com/new.png"},
	})
	require.NoError(t, err)

	// New asset staged first, old one dropped only after, record last.
	assert.Equal(t, []string{"asset.upload", "asset.delete:menuItems/old", "record.update"}, calls)
	require.NotNil(t, patched.Image)
	assert.Equal(t, newStored.PublicID, patched.Image.PublicID, "the store-issued reference is persisted, not the caller's pair")
	assert.Equal(t, newStored.URL, item.Image.URL)
}

func TestUpdateMenuItem_RecordFailureAfterSwap(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{
		calls: &calls,
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			return &models.Image{PublicID: "menuItems/new", URL: "https://cdn.example.com/new.png"}, nil
		},
		DeleteFunc: func(ctx context.Context, publicID string) error {
			return nil
		},
	}
	onFile := menuItemOnFile(&models.Image{PublicID: "menuItems/old", URL: "https://cdn.example.com/old.png"})
	items := &mockMenuItemStore{
		calls: &calls,
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		UpdateFunc: func(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
			return nil, errors.New("primary stepped down")
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	_, err := svc.Update(context.Background(), onFile.ID.Hex(), UpdateMenuItemInput{
		Image: &models.Image{PublicID: "x", URL: "https://staging.example.com/new.png"},
	})
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
	// No rollback: the failed record write is surfaced, nothing else happens.
	assert.Equal(t, []string{"asset.upload", "asset.delete:menuItems/old", "record.update"}, calls)
}

func TestUpdateMenuItem_NoImageSkipsAssetStore(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{calls: &calls}
	onFile := menuItemOnFile(&models.Image{PublicID: "menuItems/old", URL: "https://cdn.example.com/old.png"})
	items := &mockMenuItemStore{
		calls: &calls,
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		UpdateFunc: func(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
			return onFile, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	_, err := svc.Update(context.Background(), onFile.ID.Hex(), UpdateMenuItemInput{Price: float64Ptr(12.50)})
	require.NoError(t, err)
	assert.Equal(t, []string{"record.update"}, calls)
}

func TestUpdateMenuItem_OldAssetDeleteFailureDoesNotBlock(t *testing.T) {
	assets := &mockAssetStore{
		UploadFunc: func(ctx context.Context, payload, folder string) (*models.Image, error) {
			return &models.Image{PublicID: "menuItems/new", URL: "https://cdn.example.com/new.png"}, nil
		},
		DeleteFunc: func(ctx context.Context, publicID string) error {
			return errors.New("rate limited")
		},
	}
	onFile := menuItemOnFile(&models.Image{PublicID: "menuItems/old", URL: "https://cdn.example.com/old.png"})
	updateCalled := false
	items := &mockMenuItemStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		UpdateFunc: func(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
			updateCalled = true
			return onFile, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	_, err := svc.Update(context.Background(), onFile.ID.Hex(), UpdateMenuItemInput{
		Image: &models.Image{PublicID: "x", URL: "https://staging.example.com/new.png"},
	})
	require.NoError(t, err)
	assert.True(t, updateCalled)
}

func TestDeleteMenuItem_NotFound(t *testing.T) {
	items := &mockMenuItemStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return nil, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), &mockAssetStore{}, zap.NewNop())

	id := primitive.NewObjectID().Hex()
	for i := 0; i < 2; i++ {
		err := svc.Delete(context.Background(), id)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err), "repeat deletes stay NotFound, never a store error")
		assert.EqualError(t, err, "Menu item not found")
	}
}

func TestDeleteMenuItem_AssetFailureStillDeletesRecord(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{
		calls: &calls,
		DeleteFunc: func(ctx context.Context, publicID string) error {
			return errors.New("unreachable")
		},
	}
	onFile := menuItemOnFile(&models.Image{PublicID: "menuItems/stuck", URL: "https://cdn.example.com/stuck.png"})
	items := &mockMenuItemStore{
		calls: &calls,
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		DeleteFunc: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			return true, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	err := svc.Delete(context.Background(), onFile.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"asset.delete:menuItems/stuck", "record.delete"}, calls)
}

func TestDeleteMenuItem_NoImageSkipsAssetStore(t *testing.T) {
	var calls []string
	assets := &mockAssetStore{calls: &calls}
	onFile := menuItemOnFile(nil)
	items := &mockMenuItemStore{
		calls: &calls,
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
			return onFile, nil
		},
		DeleteFunc: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			return true, nil
		},
	}
	svc := NewCatalogService(items, existingCategories(), assets, zap.NewNop())

	err := svc.Delete(context.Background(), onFile.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"record.delete"}, calls)
}

func TestGetMenuItem_InvalidID(t *testing.T) {
	svc := NewCatalogService(&mockMenuItemStore{}, existingCategories(), &mockAssetStore{}, zap.NewNop())

	_, err := svc.Get(context.Background(), "short")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
