// Package mediastore abstracts the hosted media provider that owns the video
// catalog. The provider is the system of record: nothing is stored locally.
package mediastore

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// ResourceTypeVideo is the resource type used for every catalog query and upload.
const ResourceTypeVideo = "video"

// Resource is a single asset as reported by the provider.
type Resource struct {
	// PublicID is the provider-assigned identifier, possibly folder-qualified
	// (e.g. "video-manager/clip").
	PublicID string
	// Format is the file format extension without the leading dot.
	Format string
	// SecureURL is an HTTPS URL from which the asset can be played directly.
	SecureURL string
}

// Store is the narrow surface this application consumes from a media
// provider. Implementations translate these calls into provider API requests
// and hold no catalog state of their own.
type Store interface {
	// Search returns up to limit resources of the given type, in
	// provider-defined order.
	Search(ctx context.Context, resourceType string, limit int) ([]Resource, error)

	// Upload stores data under the named logical folder, tagged with the
	// given resource type inferred from its MIME type, and returns the
	// provider's view of the created resource.
	Upload(ctx context.Context, data []byte, mimeType, folder string) (Resource, error)
}

// DataURI wraps raw bytes as a base64 data URI with the given MIME type,
// the format the upload API accepts for in-memory payloads.
func DataURI(data []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DisplayName derives the client-facing file name for a resource: the
// trailing path segment of its public ID plus its format extension.
func DisplayName(r Resource) string {
	parts := strings.Split(r.PublicID, "/")
	base := parts[len(parts)-1]
	if r.Format == "" {
		return base
	}
	return fmt.Sprintf("%s.%s", base, r.Format)
}
