package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-manager/pkg/mediastore"
	"video-manager/pkg/models"
)

type recordingStore struct {
	resources    []mediastore.Resource
	uploadResult mediastore.Resource
	searchErr    error
	uploadErr    error

	searchCalls      int
	lastResourceType string
	lastLimit        int
	uploadCalls      int
	lastFolder       string
}

func (r *recordingStore) Search(_ context.Context, resourceType string, limit int) ([]mediastore.Resource, error) {
	r.searchCalls++
	r.lastResourceType = resourceType
	r.lastLimit = limit
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	return r.resources, nil
}

func (r *recordingStore) Upload(_ context.Context, data []byte, mimeType, folder string) (mediastore.Resource, error) {
	r.uploadCalls++
	r.lastFolder = folder
	if r.uploadErr != nil {
		return mediastore.Resource{}, r.uploadErr
	}
	return r.uploadResult, nil
}

func TestListVideosMapsResources(t *testing.T) {
	store := &recordingStore{
		resources: []mediastore.Resource{
			{PublicID: "folder/clip", Format: "mp4", SecureURL: "https://host/clip.mp4"},
			{PublicID: "solo", Format: "webm", SecureURL: "https://host/solo.webm"},
		},
	}
	catalog := NewCatalog(store)

	videos, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Video{
		{Name: "clip.mp4", Url: "https://host/clip.mp4"},
		{Name: "solo.webm", Url: "https://host/solo.webm"},
	}, videos)
	assert.Equal(t, mediastore.ResourceTypeVideo, store.lastResourceType)
	assert.Equal(t, 50, store.lastLimit)
}

func TestListVideosEmptyCatalog(t *testing.T) {
	catalog := NewCatalog(&recordingStore{})

	videos, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestListVideosUsesCache(t *testing.T) {
	store := &recordingStore{
		resources: []mediastore.Resource{
			{PublicID: "clip", Format: "mp4", SecureURL: "https://host/clip.mp4"},
		},
	}
	catalog := NewCatalog(store)

	first, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)
	second, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.searchCalls)
}

func TestListVideosErrorNotCached(t *testing.T) {
	store := &recordingStore{searchErr: errors.New("search down")}
	catalog := NewCatalog(store)

	_, err := catalog.ListVideos(context.Background())
	require.Error(t, err)

	store.searchErr = nil
	store.resources = []mediastore.Resource{
		{PublicID: "clip", Format: "mp4", SecureURL: "https://host/clip.mp4"},
	}

	videos, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, 2, store.searchCalls)
}

func TestUploadInvalidatesCache(t *testing.T) {
	store := &recordingStore{
		resources: []mediastore.Resource{
			{PublicID: "old", Format: "mp4", SecureURL: "https://host/old.mp4"},
		},
		uploadResult: mediastore.Resource{PublicID: "video-manager/new", Format: "mp4", SecureURL: "https://host/new.mp4"},
	}
	catalog := NewCatalog(store)

	_, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.searchCalls)

	resource, err := catalog.UploadVideo(context.Background(), []byte("bytes"), "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "video-manager/new", resource.PublicID)
	assert.Equal(t, "video-manager", store.lastFolder)

	_, err = catalog.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, store.searchCalls)
}

func TestUploadErrorKeepsCache(t *testing.T) {
	store := &recordingStore{
		resources: []mediastore.Resource{
			{PublicID: "clip", Format: "mp4", SecureURL: "https://host/clip.mp4"},
		},
		uploadErr: errors.New("upload down"),
	}
	catalog := NewCatalog(store)

	_, err := catalog.ListVideos(context.Background())
	require.NoError(t, err)

	_, err = catalog.UploadVideo(context.Background(), []byte("bytes"), "video/mp4")
	require.Error(t, err)

	_, err = catalog.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.searchCalls)
}
