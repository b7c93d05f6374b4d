// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kondratev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error from
// errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.DeltaEndpoint == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.BearerToken == "" {
		// Without a static token the OAuth2 client-credentials flow must be
		// fully configured.
		if cfg.Adapter.OAuthTokenURL == "" || cfg.Adapter.OAuthClientID == "" || cfg.Adapter.OAuthClientSecret == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	switch cfg.Storage.State.Backend {
	case "", "file", "sqlite":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.State.Encrypt && cfg.Storage.State.Passphrase == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.WindowPastMonths < 0 || cfg.Sync.WindowFutureMonths < 0 || cfg.Sync.MaxPages < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
