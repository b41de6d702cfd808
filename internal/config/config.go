// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Azimov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-admin application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing
	// parameters and lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// document database and the avatar object store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and security.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "168h", "30m"). Defaults to 7 days.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the document database connection settings.
	DB DB `envPrefix:"DB_"`

	// Images holds the object-storage settings for avatar images.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings for the document database backend.
type DB struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_DB_URI
	URI string `env:"URI"`

	// Database is the name of the database holding the accounts collection.
	// Env: STORAGE_DB_DATABASE
	Database string `env:"DATABASE"`
}

// Images holds object-storage settings for avatar images. The adapter
// speaks the S3 API, so any S3-compatible provider works (set Endpoint for
// MinIO-style deployments).
type Images struct {
	// Region is the S3 region of the bucket.
	// Env: STORAGE_IMAGES_REGION
	Region string `env:"REGION"`

	// Bucket is the bucket avatars are uploaded to.
	// Env: STORAGE_IMAGES_BUCKET
	Bucket string `env:"BUCKET"`

	// Endpoint optionally overrides the S3 endpoint for self-hosted
	// providers. Empty means the default AWS endpoint.
	// Env: STORAGE_IMAGES_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are the static credentials used to sign
	// requests to the object store.
	// Env: STORAGE_IMAGES_ACCESS_KEY / STORAGE_IMAGES_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PublicBaseURL is the base URL under which uploaded objects are
	// publicly reachable. The stored avatar URL is PublicBaseURL + "/" + key.
	// Env: STORAGE_IMAGES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// UploadFolder is the key prefix for uploaded avatars.
	// Defaults to "user_images".
	// Env: STORAGE_IMAGES_UPLOAD_FOLDER
	UploadFolder string `env:"UPLOAD_FOLDER"`

	// MaxUploadBytes caps the accepted avatar payload size.
	// Defaults to 2 MiB.
	// Env: STORAGE_IMAGES_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied by build() to fields left unset by every source.
const (
	DefaultTokenIssuer    = "go-user-admin"
	DefaultTokenDuration  = 7 * 24 * time.Hour
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDatabase       = "useradmin"
	DefaultUploadFolder   = "user_images"
	DefaultMaxUploadBytes = 2 << 20
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills in the documented defaults for fields no source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.Database == "" {
		cfg.Storage.DB.Database = DefaultDatabase
	}
	if cfg.Storage.Images.UploadFolder == "" {
		cfg.Storage.Images.UploadFolder = DefaultUploadFolder
	}
	if cfg.Storage.Images.MaxUploadBytes == 0 {
		cfg.Storage.Images.MaxUploadBytes = DefaultMaxUploadBytes
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key and database URI have no sensible defaults and must be
// provided by some source. Object-storage settings are not validated here:
// a misconfigured image store surfaces as an upstream error on upload, and
// deployments without avatar support may legitimately leave it empty.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if cfg.Storage.DB.URI == "" {
		return ErrNoDatabaseURI
	}

	return nil
}
