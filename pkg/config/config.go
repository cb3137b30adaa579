package config

import (
	"errors"
	"fmt"
	"os"
)

// Supported media store providers.
const (
	ProviderCloudinary = "cloudinary"
	ProviderGCS        = "gcs"
	ProviderS3         = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Provider   string
	CloudName  string
	APIKey     string
	APISecret  string
	BucketName string

	AdminUsername string
	AdminPassword string
	AuthToken     string

	Port string
}

// ErrCloudNameNotSet is returned when the CLOUD_NAME environment variable is not set
var ErrCloudNameNotSet = errors.New("CLOUD_NAME environment variable not set")

// ErrAPIKeyNotSet is returned when the API_KEY environment variable is not set
var ErrAPIKeyNotSet = errors.New("API_KEY environment variable not set")

// ErrAPISecretNotSet is returned when the API_SECRET environment variable is not set
var ErrAPISecretNotSet = errors.New("API_SECRET environment variable not set")

// ErrBucketNameNotSet is returned when the BUCKET_NAME environment variable is not set
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrUnknownProvider is returned when PROVIDER names an unsupported backend
var ErrUnknownProvider = errors.New("unknown PROVIDER value")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Provider:      os.Getenv("PROVIDER"),
		CloudName:     os.Getenv("CLOUD_NAME"),
		APIKey:        os.Getenv("API_KEY"),
		APISecret:     os.Getenv("API_SECRET"),
		BucketName:    os.Getenv("BUCKET_NAME"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AuthToken:     os.Getenv("AUTH_TOKEN"),
		Port:          os.Getenv("PORT"),
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderCloudinary
	}

	switch cfg.Provider {
	case ProviderCloudinary:
		if cfg.CloudName == "" {
			return nil, ErrCloudNameNotSet
		}
		if cfg.APIKey == "" {
			return nil, ErrAPIKeyNotSet
		}
		if cfg.APISecret == "" {
			return nil, ErrAPISecretNotSet
		}
	case ProviderGCS, ProviderS3:
		if cfg.BucketName == "" {
			return nil, ErrBucketNameNotSet
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin"
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = "admin_token"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Media store provider: %s\n", c.Provider)
	fmt.Printf("Catalog URL: http://localhost:%s/\n", c.Port)
}
