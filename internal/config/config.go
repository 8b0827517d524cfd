// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// auth core. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the symmetric key material
	// for stored tenant passwords. Key provisioning itself happens
	// outside this module; the key only arrives here.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for talking to the remote portal
	// backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings for the development stub server binary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings (session janitor).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the symmetric key material used to decrypt stored tenant
// passwords. Exactly one of the two supply modes must be configured:
// a raw base64 key, or a passphrase plus salt for Argon2id derivation.
type App struct {
	// EncryptionKey is the base64-encoded AES key shared with the backend.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// KeyPassphrase is the deployment passphrase a key is derived from
	// when EncryptionKey is not set.
	// Env: APP_KEY_PASSPHRASE
	KeyPassphrase string `env:"KEY_PASSPHRASE"`

	// KeySalt is the base64-encoded salt used together with
	// KeyPassphrase.
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`
}

// Adapter holds network settings for the backend REST adapter.
type Adapter struct {
	// BaseURL is the portal backend base URL
	// (e.g. "https://backend.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for one outbound
	// request before the client gives up (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite database path, or ":memory:" for an ephemeral
	// database (tests only).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings for the development stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval defines how often the session janitor runs.
	// Zero disables the janitor.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// SessionTTL is the idle age after which session fields are pruned.
	// Env: WORKERS_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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
