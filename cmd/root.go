package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"video-manager/pkg/config"
	"video-manager/pkg/mediastore"
)

// Configuration flags
var (
	providerName string
	bucketName   string
	portNumber   string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "video-manager",
		Short: "Video Manager is a tool for managing a hosted video catalog",
		Long: `Video Manager is a command line application that manages a video catalog
hosted on an external media store (Cloudinary, Google Cloud Storage, or S3).
It can serve the catalog via a web interface, list it, or upload to it.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "P", "", "Set the PROVIDER (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListVideosCmd())
	rootCmd.AddCommand(newUploadCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if providerName != "" {
		os.Setenv("PROVIDER", providerName)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// NewStore builds the media store backend selected by the configuration.
func NewStore(ctx context.Context, cfg *config.Config) (mediastore.Store, error) {
	switch cfg.Provider {
	case config.ProviderCloudinary:
		return mediastore.NewCloudinaryStore(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	case config.ProviderGCS:
		return mediastore.NewGCSStore(cfg.BucketName), nil
	case config.ProviderS3:
		return mediastore.NewS3Store(ctx, cfg.BucketName)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownProvider, cfg.Provider)
	}
}
