// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself stays permissive: required fields are
// enforced by the per-binary views ([PortalConfig], [StubConfig]) after
// defaults are applied, so either binary can run with only the settings
// it cares about.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// hasKeyMaterial reports whether exactly enough key material was supplied:
// a raw base64 key, or a passphrase together with its salt.
func (a PortalApp) hasKeyMaterial() bool {
	if a.EncryptionKey != "" {
		return true
	}
	return a.KeyPassphrase != "" && a.KeySalt != ""
}

func (cfg *PortalConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.App.hasKeyMaterial() {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.PruneInterval != 0 && cfg.Workers.SessionTTL == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !cfg.App.hasKeyMaterial() {
		return ErrInvalidAppConfigs
	}

	return nil
}
