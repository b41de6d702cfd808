// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Azimov

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalConfig carries the two fields validate() insists on.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "jwt_secret"},
		Storage: Storage{DB: DB{URI: "mongodb://localhost:27017"}},
	}
}

// ---- newConfigBuilder ----

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ---- build ----

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDatabase, cfg.Storage.DB.Database)
	assert.Equal(t, DefaultUploadFolder, cfg.Storage.Images.UploadFolder)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.Storage.Images.MaxUploadBytes)
}

func TestBuild_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	explicit := minimalConfig()
	explicit.App.TokenIssuer = "custom_issuer"
	explicit.App.TokenDuration = time.Hour
	explicit.Server.HTTPAddress = "localhost:9999"
	explicit.Storage.DB.Database = "custom_db"

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "custom_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "custom_db", cfg.Storage.DB.Database)
}

func TestBuild_EarlierSourceWinsPerField(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from_env"}},
		&StructuredConfig{
			App:     App{TokenSignKey: "from_json", TokenIssuer: "json_issuer"},
			Storage: Storage{DB: DB{URI: "mongodb://localhost:27017"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// the first source to set a field keeps it; later sources only fill gaps
	assert.Equal(t, "from_env", cfg.App.TokenSignKey)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
}

func TestBuild_MissingTokenSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{URI: "mongodb://localhost:27017"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestBuild_MissingDatabaseURI(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "jwt_secret"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrNoDatabaseURI)
}

// ---- withEnv ----

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env_secret",
		"APP_TOKEN_ISSUER":   "env_issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env_secret", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "env_issuer", b.configs[0].App.TokenIssuer)
	assert.NoError(t, b.err)
}

// ---- withJSON ----

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	assert.Same(t, b, b.withJSON())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_ParsesResolvedPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	jsonBody := `{"app": {"token_issuer": "json_issuer"}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json_issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "definitely-does-not-exist.json"})
	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)

	_, err := b.build()
	assert.Error(t, err)
}
