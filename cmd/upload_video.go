package cmd

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"video-manager/pkg/services"
)

// newUploadCmd creates a new command for uploading a local video file
func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a video file to the catalog",
		Long:  `Upload a local video file to the media store, making it visible in the catalog.`,
		Args:  cobra.ExactArgs(1),
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

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", path, err)
			}

			mimeType := mime.TypeByExtension(filepath.Ext(path))
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}

			catalog := services.NewCatalog(store)
			resource, err := catalog.UploadVideo(ctx, data, mimeType)
			if err != nil {
				log.Fatalf("Failed to upload %s: %v", path, err)
			}

			fmt.Printf("Uploaded %s\n", path)
			fmt.Printf("  ID:  %s\n", resource.PublicID)
			fmt.Printf("  URL: %s\n", resource.SecureURL)
		},
	}
}
