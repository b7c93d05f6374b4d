// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kondratev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_STATE_NAMESPACE": "meetsync/work-calendar",
		"APP_VERSION":         "1.2.3",

		"ADAPTER_DELTA_ENDPOINT":      "https://graph.microsoft.com/v1.0/me/calendarView/delta",
		"ADAPTER_REQUEST_TIMEOUT":     "30s",
		"ADAPTER_BEARER_TOKEN":        "static-token",
		"ADAPTER_OAUTH_TOKEN_URL":     "https://login.example.com/token",
		"ADAPTER_OAUTH_CLIENT_ID":     "client-id",
		"ADAPTER_OAUTH_CLIENT_SECRET": "client-secret",
		"ADAPTER_OAUTH_SCOPES":        "https://graph.microsoft.com/.default,offline_access",

		// Storage has nested prefixes: STORAGE_ + STATE_
		"STORAGE_STATE_BACKEND":    "sqlite",
		"STORAGE_STATE_PATH":       "/var/lib/meetsync/state.db",
		"STORAGE_STATE_ENCRYPT":    "true",
		"STORAGE_STATE_PASSPHRASE": "s3cret",

		"SYNC_WINDOW_PAST_MONTHS":   "2",
		"SYNC_WINDOW_FUTURE_MONTHS": "4",
		"SYNC_MAX_PAGES":            "500",
		"SYNC_SELECT_FIELDS":        "id,subject,start,end",

		"SERVER_ADDRESS":         "127.0.0.1:7125",
		"SERVER_REQUEST_TIMEOUT": "15s",

		"WORKERS_SYNC_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "meetsync/work-calendar", cfg.App.StateNamespace)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://graph.microsoft.com/v1.0/me/calendarView/delta", cfg.Adapter.DeltaEndpoint)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "static-token", cfg.Adapter.BearerToken)
	assert.Equal(t, "https://login.example.com/token", cfg.Adapter.OAuthTokenURL)
	assert.Equal(t, "client-id", cfg.Adapter.OAuthClientID)
	assert.Equal(t, "client-secret", cfg.Adapter.OAuthClientSecret)
	assert.Equal(t, []string{"https://graph.microsoft.com/.default", "offline_access"}, cfg.Adapter.OAuthScopes)

	assert.Equal(t, "sqlite", cfg.Storage.State.Backend)
	assert.Equal(t, "/var/lib/meetsync/state.db", cfg.Storage.State.Path)
	assert.True(t, cfg.Storage.State.Encrypt)
	assert.Equal(t, "s3cret", cfg.Storage.State.Passphrase)

	assert.Equal(t, 2, cfg.Sync.WindowPastMonths)
	assert.Equal(t, 4, cfg.Sync.WindowFutureMonths)
	assert.Equal(t, 500, cfg.Sync.MaxPages)
	assert.Equal(t, "id,subject,start,end", cfg.Sync.SelectFields)

	assert.Equal(t, "127.0.0.1:7125", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_DELTA_ENDPOINT": "https://graph.example.com/delta",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://graph.example.com/delta", cfg.Adapter.DeltaEndpoint)
	assert.Empty(t, cfg.Storage.State.Backend)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
