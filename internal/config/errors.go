package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no configuration source provided
	// a JWT signing key.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseURI is returned when no configuration source provided
	// a database connection string.
	ErrNoDatabaseURI = errors.New("database URI is not configured")
)
