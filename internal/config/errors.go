package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token signing settings
	// (sign key, issuer or duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionCacheConfigs indicates that concurrent-login
	// limiting is enabled but no session cache address was provided.
	ErrInvalidSessionCacheConfigs = errors.New("invalid session cache configuration")
	// ErrInvalidServerConfigs indicates missing HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
