// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kondratev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for meetsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the persisted-state
	// namespace and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the outbound change-feed transport settings: delta
	// endpoint, request timeout, and credential acquisition.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the sync-state persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the delta-walk policy: bootstrap window, page cap, and the
	// field projection requested from the remote service.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the local control API address and timeout settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StateNamespace is the key under which the sync state is persisted.
	// Namespacing keeps state of different calendars or builds apart in a
	// shared settings store.
	// Env: APP_STATE_NAMESPACE
	StateNamespace string `env:"STATE_NAMESPACE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound change-feed transport and
// credential acquisition.
type Adapter struct {
	// DeltaEndpoint is the base URL of the calendar delta query, e.g.
	// "https://graph.microsoft.com/v1.0/me/calendarView/delta".
	// Env: ADAPTER_DELTA_ENDPOINT
	DeltaEndpoint string `env:"DELTA_ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single page
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BearerToken is a pre-acquired static bearer credential. When set, the
	// static token provider is used and the OAuth fields are ignored.
	// Env: ADAPTER_BEARER_TOKEN
	BearerToken string `env:"BEARER_TOKEN"`

	// OAuthTokenURL is the OAuth2 client-credentials token endpoint used to
	// acquire bearer tokens when BearerToken is empty.
	// Env: ADAPTER_OAUTH_TOKEN_URL
	OAuthTokenURL string `env:"OAUTH_TOKEN_URL"`

	// OAuthClientID identifies the application at the token endpoint.
	// Env: ADAPTER_OAUTH_CLIENT_ID
	OAuthClientID string `env:"OAUTH_CLIENT_ID"`

	// OAuthClientSecret authenticates the application at the token endpoint.
	// Must be kept confidential.
	// Env: ADAPTER_OAUTH_CLIENT_SECRET
	OAuthClientSecret string `env:"OAUTH_CLIENT_SECRET"`

	// OAuthScopes is the scope list requested with each token
	// (e.g. "https://graph.microsoft.com/.default").
	// Env: ADAPTER_OAUTH_SCOPES (comma-separated)
	OAuthScopes []string `env:"OAUTH_SCOPES" envSeparator:","`
}

// Storage groups the configuration for the sync-state persistence backends.
type Storage struct {
	// State holds the sync-state store settings.
	State State `envPrefix:"STATE_"`
}

// State holds settings for the sync-state store backend.
type State struct {
	// Backend selects the persistence backend: "file" (plain local-settings
	// JSON file) or "sqlite" (SQLite database).
	// Env: STORAGE_STATE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the settings file path for the file backend, or the SQLite
	// DSN for the sqlite backend.
	// Env: STORAGE_STATE_PATH
	Path string `env:"PATH"`

	// Encrypt enables the encrypted store wrapper: the continuation token is
	// sealed at rest with a key derived from Passphrase.
	// Env: STORAGE_STATE_ENCRYPT
	Encrypt bool `env:"ENCRYPT"`

	// Passphrase is the secret the token-sealing key is derived from.
	// Required when Encrypt is true. Must be kept confidential.
	// Env: STORAGE_STATE_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Sync holds the delta-walk policy settings.
type Sync struct {
	// WindowPastMonths bounds the bootstrap window into the past, in whole
	// months from "now" at call time. Defaults to 3 when zero.
	// Env: SYNC_WINDOW_PAST_MONTHS
	WindowPastMonths int `env:"WINDOW_PAST_MONTHS"`

	// WindowFutureMonths bounds the bootstrap window into the future, in
	// whole months from "now" at call time. Defaults to 3 when zero.
	// Env: SYNC_WINDOW_FUTURE_MONTHS
	WindowFutureMonths int `env:"WINDOW_FUTURE_MONTHS"`

	// MaxPages caps a single page walk. The remote feed's page count is
	// server-controlled; the cap bounds pathological walks. Defaults to
	// 1000 when zero.
	// Env: SYNC_MAX_PAGES
	MaxPages int `env:"MAX_PAGES"`

	// SelectFields is the comma-separated $select projection requested on
	// the bootstrap request. Defaults to the event fields the recorder
	// consumes.
	// Env: SYNC_SELECT_FIELDS
	SelectFields string `env:"SELECT_FIELDS"`
}

// Server holds network and timeout settings for the local control API.
type Server struct {
	// HTTPAddress is the TCP address on which the control API listens,
	// in "host:port" format (e.g. "127.0.0.1:7125").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync worker runs.
	// Zero disables the worker; the engine then only runs on demand.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (an earlier source
// wins for fields it sets to a non-zero value):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
