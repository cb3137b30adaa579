package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROVIDER", "CLOUD_NAME", "API_KEY", "API_SECRET", "BUCKET_NAME",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "AUTH_TOKEN", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadCloudinaryDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUD_NAME", "demo")
	t.Setenv("API_KEY", "key")
	t.Setenv("API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderCloudinary, cfg.Provider)
	assert.Equal(t, "demo", cfg.CloudName)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.Equal(t, "admin_token", cfg.AuthToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.ServerAddress())
}

func TestLoadCloudinaryMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		wantErr error
	}{
		{"no cloud name", map[string]string{"API_KEY": "k", "API_SECRET": "s"}, ErrCloudNameNotSet},
		{"no api key", map[string]string{"CLOUD_NAME": "c", "API_SECRET": "s"}, ErrAPIKeyNotSet},
		{"no api secret", map[string]string{"CLOUD_NAME": "c", "API_KEY": "k"}, ErrAPISecretNotSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadBucketProviders(t *testing.T) {
	for _, provider := range []string{ProviderGCS, ProviderS3} {
		t.Run(provider, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PROVIDER", provider)

			_, err := Load()
			assert.ErrorIs(t, err, ErrBucketNameNotSet)

			t.Setenv("BUCKET_NAME", "my-bucket")
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, provider, cfg.Provider)
			assert.Equal(t, "my-bucket", cfg.BucketName)
		})
	}
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER", "dropbox")

	_, err := Load()
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUD_NAME", "demo")
	t.Setenv("API_KEY", "key")
	t.Setenv("API_SECRET", "secret")
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("AUTH_TOKEN", "other_token")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "operator", cfg.AdminUsername)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "other_token", cfg.AuthToken)
	assert.Equal(t, ":9090", cfg.ServerAddress())
}
