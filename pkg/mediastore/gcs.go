package mediastore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// videoExtensions are the object suffixes treated as video resources when
// listing a bucket.
var videoExtensions = []string{".mp4", ".m4v", ".webm", ".mov", ".avi"}

// GCSStore implements Store on a Google Cloud Storage bucket. Objects are
// treated as video resources when their name carries a known video extension;
// playback URLs are 24-hour signed URLs.
type GCSStore struct {
	bucketName string
}

// NewGCSStore creates a store for the given bucket. Credentials come from the
// environment, as with every Cloud Storage client.
func NewGCSStore(bucketName string) *GCSStore {
	return &GCSStore{bucketName: bucketName}
}

// Search lists bucket objects with a video extension, up to limit.
func (s *GCSStore) Search(ctx context.Context, resourceType string, limit int) ([]Resource, error) {
	if resourceType != ResourceTypeVideo {
		return nil, fmt.Errorf("unsupported resource type: %s", resourceType)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	bucket := client.Bucket(s.bucketName)
	it := bucket.Objects(ctx, nil)

	var resources []Resource
	for len(resources) < limit {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate objects: %w", err)
		}

		ext := videoExtension(obj.Name)
		if ext == "" {
			continue
		}

		signedURL, err := bucket.SignedURL(obj.Name, &storage.SignedURLOptions{
			Expires: time.Now().Add(24 * time.Hour),
			Method:  "GET",
		})
		if err != nil {
			return nil, fmt.Errorf("sign url for %s: %w", obj.Name, err)
		}

		resources = append(resources, Resource{
			PublicID:  strings.TrimSuffix(obj.Name, ext),
			Format:    strings.TrimPrefix(ext, "."),
			SecureURL: signedURL,
		})
	}
	return resources, nil
}

// Upload writes the payload as a new object under folder and returns a
// signed playback URL for it.
func (s *GCSStore) Upload(ctx context.Context, data []byte, mimeType, folder string) (Resource, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return Resource{}, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	format := formatFromMIME(mimeType)
	publicID := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	objectName := fmt.Sprintf("%s.%s", publicID, format)

	bucket := client.Bucket(s.bucketName)
	w := bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = mimeType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return Resource{}, fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return Resource{}, fmt.Errorf("finalize object %s: %w", objectName, err)
	}

	signedURL, err := bucket.SignedURL(objectName, &storage.SignedURLOptions{
		Expires: time.Now().Add(24 * time.Hour),
		Method:  "GET",
	})
	if err != nil {
		return Resource{}, fmt.Errorf("sign url for %s: %w", objectName, err)
	}

	return Resource{
		PublicID:  publicID,
		Format:    format,
		SecureURL: signedURL,
	}, nil
}

// videoExtension returns the matching video extension of name, or "".
func videoExtension(name string) string {
	for _, ext := range videoExtensions {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}

// formatFromMIME derives a file extension from a MIME type, e.g.
// "video/mp4" -> "mp4". Unrecognized types fall back to the subtype as-is.
func formatFromMIME(mimeType string) string {
	_, subtype, found := strings.Cut(mimeType, "/")
	if !found || subtype == "" {
		return "bin"
	}
	if subtype == "quicktime" {
		return "mov"
	}
	return subtype
}
