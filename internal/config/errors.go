package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidRelayConfigs indicates invalid client relay settings
	// (for example, missing URL or request timeout).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidStorageConfigs indicates invalid relay storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the relay (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid relay server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity bootstrap
	// settings (for example, missing salt file path).
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
