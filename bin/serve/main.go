package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"video-manager/cmd"
	"video-manager/pkg/auth"
	"video-manager/pkg/config"
	"video-manager/pkg/handlers"
	"video-manager/pkg/services"
)

// Standalone server entrypoint for deployments that do not need the CLI.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := cmd.NewStore(context.Background(), cfg)
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
