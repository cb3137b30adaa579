package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"video-manager/pkg/models"
	"video-manager/pkg/services"
)

// newListVideosCmd creates a new command for listing the video catalog
func newListVideosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-videos",
		Short: "List all videos in the catalog",
		Long:  `List all videos currently reported by the media store, with their playback URLs.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			ctx := context.Background()
			store, err := NewStore(ctx, cfg)
			if err != nil {
				log.Fatalf("Failed to create media store: %v", err)
			}

			catalog := services.NewCatalog(store)
			videos, err := catalog.ListVideos(ctx)
			if err != nil {
				log.Fatalf("Failed to list videos: %v", err)
			}

			listVideos(videos)
		},
	}
}

// listVideos displays the catalog
func listVideos(videos []models.Video) {
	fmt.Println("Video Catalog:")
	fmt.Println("==============")

	for _, video := range videos {
		fmt.Printf("  - %s\n", video.Name)
		fmt.Printf("    URL: %s\n", video.Url)
	}

	fmt.Printf("Total: %d videos\n", len(videos))
}
