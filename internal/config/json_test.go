package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings in time.ParseDuration format (e.g. "30s").
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": {
				"uri": "mongodb://localhost:27017",
				"database": "useradmin_test"
			},
			"images": {
				"region": "us-east-1",
				"bucket": "avatars",
				"endpoint": "http://localhost:9000",
				"access_key": "access",
				"secret_key": "secret",
				"public_base_url": "https://cdn.example.com",
				"upload_folder": "avatars",
				"max_upload_bytes": 1048576
			}
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
	assert.Equal(t, "useradmin_test", cfg.Storage.DB.Database)

	assert.Equal(t, "us-east-1", cfg.Storage.Images.Region)
	assert.Equal(t, "avatars", cfg.Storage.Images.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.Storage.Images.Endpoint)
	assert.Equal(t, "access", cfg.Storage.Images.AccessKey)
	assert.Equal(t, "secret", cfg.Storage.Images.SecretKey)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.Images.PublicBaseURL)
	assert.Equal(t, "avatars", cfg.Storage.Images.UploadFolder)
	assert.Equal(t, int64(1048576), cfg.Storage.Images.MaxUploadBytes)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		expectErr bool
	}{
		{name: "hours", input: `"168h"`, expected: 168 * time.Hour},
		{name: "minutes", input: `"30m"`, expected: 30 * time.Minute},
		{name: "combined", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "not a duration", input: `"soon"`, expectErr: true},
		{name: "not a string", input: `42`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
