// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Kept permissive on purpose: the structured config serves both the
// relay and the client, and each entry point enforces its own required
// subset (see GetServerConfig and GetClientConfig).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.Driver != "sqlite3" && cfg.Storage.Driver != "pgx" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Relay.URL == "" || cfg.Relay.RequestTimeout == 0 {
		return ErrInvalidRelayConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Identity.SaltFile == "" {
		return ErrInvalidIdentityConfigs
	}

	return nil
}
