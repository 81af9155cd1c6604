package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings required by the relay.
type ServerApp struct {
	// TokenSignKey signs relay session JWTs.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the session token lifetime.
	TokenDuration time.Duration
	// Version is the running application version.
	Version string
}

// ServerStorage holds node database settings for the relay.
type ServerStorage struct {
	// Driver selects the database/sql driver.
	Driver string
	// DSN is the database connection string.
	DSN string
}

// ServerHTTP holds the relay's inbound transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerConfig is the top-level relay configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token settings.
	App ServerApp
	// Storage contains node database settings.
	Storage ServerStorage
	// Server contains inbound transport settings.
	Server ServerHTTP
}

// GetServerConfig builds and validates a relay-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Storage: ServerStorage{
			Driver: cfg.Storage.DB.Driver,
			DSN:    cfg.Storage.DB.DSN,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return serverCfg, serverCfg.validate()
}
