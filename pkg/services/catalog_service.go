package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"video-manager/pkg/mediastore"
	"video-manager/pkg/models"
)

const (
	// maxListResults caps every catalog query against the media store.
	maxListResults = 50

	// uploadFolder is the logical folder every upload lands in.
	uploadFolder = "video-manager"

	videoCacheKey = "videos"
)

// Catalog projects the media store's current contents into the video list
// shown to clients. The store is the only source of truth; the catalog holds
// nothing but a short-lived listing cache.
type Catalog struct {
	store      mediastore.Store
	videoCache *cache.Cache
	mu         sync.RWMutex
}

// NewCatalog creates a catalog over the given media store.
func NewCatalog(store mediastore.Store) *Catalog {
	return &Catalog{
		store:      store,
		videoCache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

// ListVideos returns the current video catalog in the store's order.
func (c *Catalog) ListVideos(ctx context.Context) ([]models.Video, error) {
	c.mu.RLock()
	if cached, found := c.videoCache.Get(videoCacheKey); found {
		c.mu.RUnlock()
		log.Println("Using cached video list")
		return cached.([]models.Video), nil
	}
	c.mu.RUnlock()

	resources, err := c.store.Search(ctx, mediastore.ResourceTypeVideo, maxListResults)
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(resources))
	for _, r := range resources {
		videos = append(videos, models.Video{
			Name: mediastore.DisplayName(r),
			Url:  r.SecureURL,
		})
	}

	c.mu.Lock()
	c.videoCache.Set(videoCacheKey, videos, cache.DefaultExpiration)
	c.mu.Unlock()

	return videos, nil
}

// UploadVideo forwards the buffered file to the media store and invalidates
// the listing cache so the next list reflects the new video.
func (c *Catalog) UploadVideo(ctx context.Context, data []byte, mimeType string) (mediastore.Resource, error) {
	resource, err := c.store.Upload(ctx, data, mimeType, uploadFolder)
	if err != nil {
		return mediastore.Resource{}, err
	}

	c.mu.Lock()
	c.videoCache.Delete(videoCacheKey)
	c.mu.Unlock()

	return resource, nil
}
