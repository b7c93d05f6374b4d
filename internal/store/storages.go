package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ekondratev/meetsync/internal/config"
	"github.com/ekondratev/meetsync/internal/crypto"
	"github.com/ekondratev/meetsync/internal/logger"
)

// Backend names accepted in [config.State].Backend. An empty backend selects
// the file store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Defaults applied when the corresponding config fields are empty.
const (
	defaultNamespace  = "default"
	defaultFilePath   = "meetsync_state.json"
	defaultSQLitePath = "meetsync.db"
)

// NewSyncStateStore builds the configured sync-state backend and, when
// encryption is enabled, wraps it so the continuation token is sealed at
// rest. For the sqlite backend the schema is migrated before first use.
func NewSyncStateStore(ctx context.Context, cfg config.Storage, app config.App, log *logger.Logger) (SyncStateStore, error) {
	namespace := app.StateNamespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	var (
		inner SyncStateStore
		path  string
		err   error
	)

	switch cfg.State.Backend {
	case "", BackendFile:
		path = cfg.State.Path
		if path == "" {
			path = defaultFilePath
		}
		inner, err = NewFileStateStore(path, namespace)
		if err != nil {
			return nil, fmt.Errorf("init file state store: %w", err)
		}
	case BackendSQLite:
		path = cfg.State.Path
		if path == "" {
			path = defaultSQLitePath
		}
		db, connErr := NewConnectSQLite(ctx, path, log)
		if connErr != nil {
			return nil, fmt.Errorf("init sqlite state store: %w", connErr)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate sqlite state store: %w", err)
		}
		inner = NewSQLiteStateStore(db, namespace, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.State.Backend)
	}

	log.Debug().
		Str("func", "NewSyncStateStore").
		Str("backend", cfg.State.Backend).
		Str("namespace", namespace).
		Bool("encrypt", cfg.State.Encrypt).
		Msg("sync state store initialized")

	if !cfg.State.Encrypt {
		return inner, nil
	}

	salt, err := loadOrCreateSalt(path + ".salt")
	if err != nil {
		return nil, fmt.Errorf("load state store salt: %w", err)
	}

	return NewSecureStateStore(inner, crypto.NewTokenCipher(cfg.State.Passphrase, salt)), nil
}

// loadOrCreateSalt reads the key-derivation salt from the sidecar file next
// to the state store, generating and persisting a fresh one on first run.
// The salt must stay stable across restarts or sealed tokens become
// unreadable.
func loadOrCreateSalt(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		salt, decodeErr := base64.StdEncoding.DecodeString(string(data))
		if decodeErr != nil {
			return nil, fmt.Errorf("decode salt file: %w", decodeErr)
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read salt file: %w", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create salt dir: %w", err)
		}
	}
	encoded := base64.StdEncoding.EncodeToString(salt)
	if err = os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("write salt file: %w", err)
	}

	return salt, nil
}
