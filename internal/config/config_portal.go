package config

import (
	"fmt"
	"time"
)

// Default values substituted by [GetPortalConfig] when a setting was not
// supplied by any source.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultSessionDSN     = "portal-session.db"
	defaultSessionTTL     = 7 * 24 * time.Hour
	defaultStubAddress    = "localhost:8080"
)

// PortalApp holds the symmetric key material for the portal client.
type PortalApp struct {
	// EncryptionKey is the base64-encoded AES key, if supplied raw.
	EncryptionKey string
	// KeyPassphrase and KeySalt configure Argon2id derivation when no
	// raw key is supplied.
	KeyPassphrase string
	KeySalt       string
}

// PortalAdapter holds network settings used by the backend adapter.
type PortalAdapter struct {
	// BaseURL is the portal backend base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// SessionDB contains local session database connection settings.
type SessionDB struct {
	// DSN is the SQLite path of the session database.
	DSN string
}

// SessionStorage groups session storage backend settings.
type SessionStorage struct {
	// DB holds local database settings.
	DB SessionDB
}

// PortalWorkers contains background worker settings for the client.
type PortalWorkers struct {
	// PruneInterval defines how often the session janitor runs.
	// Zero disables the janitor.
	PruneInterval time.Duration
	// SessionTTL is the idle age after which session fields are pruned.
	SessionTTL time.Duration
}

// PortalConfig is the top-level portal client configuration assembled
// from [StructuredConfig].
type PortalConfig struct {
	// App contains key material settings.
	App PortalApp
	// Adapter contains backend address and timeout.
	Adapter PortalAdapter
	// Storage contains session storage settings.
	Storage SessionStorage
	// Workers contains background job settings.
	Workers PortalWorkers
}

// StubConfig is the development stub server configuration assembled from
// [StructuredConfig]. The stub needs the same key material as the client
// so its fixture passwords decrypt correctly.
type StubConfig struct {
	// HTTPAddress is the listen address of the stub server.
	HTTPAddress string
	// App contains key material settings.
	App PortalApp
}

// GetPortalConfig builds and validates the portal-client view of the
// merged structured configuration, substituting documented defaults for
// settings no source supplied.
func GetPortalConfig() (*PortalConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	portalCfg := &PortalConfig{
		App: PortalApp{
			EncryptionKey: cfg.App.EncryptionKey,
			KeyPassphrase: cfg.App.KeyPassphrase,
			KeySalt:       cfg.App.KeySalt,
		},
		Adapter: PortalAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: SessionStorage{
			DB: SessionDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: PortalWorkers{
			PruneInterval: cfg.Workers.PruneInterval,
			SessionTTL:    cfg.Workers.SessionTTL,
		},
	}

	portalCfg.applyDefaults()

	return portalCfg, portalCfg.validate()
}

func (cfg *PortalConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultSessionDSN
	}
	if cfg.Workers.PruneInterval != 0 && cfg.Workers.SessionTTL == 0 {
		cfg.Workers.SessionTTL = defaultSessionTTL
	}
}

// GetStubConfig builds and validates the stub-server view of the merged
// structured configuration.
func GetStubConfig() (*StubConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		HTTPAddress: cfg.Server.HTTPAddress,
		App: PortalApp{
			EncryptionKey: cfg.App.EncryptionKey,
			KeyPassphrase: cfg.App.KeyPassphrase,
			KeySalt:       cfg.App.KeySalt,
		},
	}

	if stubCfg.HTTPAddress == "" {
		stubCfg.HTTPAddress = defaultStubAddress
	}

	return stubCfg, stubCfg.validate()
}
