package mediastore

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements Store against the Cloudinary search and upload APIs.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a store for the given Cloudinary account.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

// Search queries the Cloudinary search API for resources of the given type.
func (s *CloudinaryStore) Search(ctx context.Context, resourceType string, limit int) ([]Resource, error) {
	result, err := s.cld.Admin.Search(ctx, search.Query{
		Expression: fmt.Sprintf("resource_type:%s", resourceType),
		MaxResults: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary search: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary search: %s", result.Error.Message)
	}

	resources := make([]Resource, 0, len(result.Assets))
	for _, asset := range result.Assets {
		resources = append(resources, Resource{
			PublicID:  asset.PublicID,
			Format:    asset.Format,
			SecureURL: asset.SecureURL,
		})
	}
	return resources, nil
}

// Upload sends the payload as a base64 data URI into the given folder.
func (s *CloudinaryStore) Upload(ctx context.Context, data []byte, mimeType, folder string) (Resource, error) {
	result, err := s.cld.Upload.Upload(ctx, DataURI(data, mimeType), uploader.UploadParams{
		ResourceType: ResourceTypeVideo,
		Folder:       folder,
	})
	if err != nil {
		return Resource{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return Resource{}, fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}

	return Resource{
		PublicID:  result.PublicID,
		Format:    result.Format,
		SecureURL: result.SecureURL,
	}, nil
}
