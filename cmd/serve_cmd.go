package cmd

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"video-manager/pkg/auth"
	"video-manager/pkg/config"
	"video-manager/pkg/handlers"
	"video-manager/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the video catalog via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the video catalog
func serveWebsite(cfg *config.Config) {
	store, err := NewStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create media store: %v", err)
	}

	catalog := services.NewCatalog(store)
	authenticator := auth.NewStatic(cfg.AdminUsername, cfg.AdminPassword, cfg.AuthToken)
	handler := handlers.New(catalog, authenticator)

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), handler.Routes()); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
