package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"go-restaurant-orders/models"
)

// AssetStore is the binary-asset side of the catalog. Its failures are
// independent of the record store's.
type AssetStore interface {
	// Upload stores the payload (a base64 data URI or a remote URL) and
	// returns the stored asset's identifier and retrievable URL.
	Upload(ctx context.Context, payload string, folder string) (*models.Image, error)
	// Delete removes an asset by identifier. Deleting an asset that does not
	// exist is success, not an error.
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore() (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("configuring cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, payload string, folder string) (*models.Image, error) {
	resp, err := s.cld.Upload.Upload(ctx, payload, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("uploading asset: %w", err)
	}
	// The SDK reports API-level failures in the response body, not as an error.
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("uploading asset: %s", resp.Error.Message)
	}
	return &models.Image{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("deleting asset %s: %w", publicID, err)
	}
	if resp.Result == "not found" {
		return nil
	}
	if resp.Result != "ok" {
		return fmt.Errorf("deleting asset %s: %s", publicID, resp.Result)
	}
	return nil
}
