package config

import (
	"fmt"
	"time"
)

// ClientRelay holds network settings used by the client transport layer.
type ClientRelay struct {
	// URL is the relay base URL the client connects to.
	URL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientIdentity holds the identity bootstrap settings for the client.
type ClientIdentity struct {
	// Name is the display name attached to a newly derived identity.
	Name string
	// SaltFile is the path where the identity derivation salt is kept.
	SaltFile string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the inbox sync job should run.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Relay contains client transport address and timeout.
	Relay ClientRelay
	// Identity contains identity bootstrap settings.
	Identity ClientIdentity
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Relay: ClientRelay{
			URL:            cfg.Relay.URL,
			RequestTimeout: cfg.Relay.RequestTimeout,
		},
		Identity: ClientIdentity{
			Name:     cfg.Identity.Name,
			SaltFile: cfg.Identity.SaltFile,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
