package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ekondratev/meetsync/models"
)

// fileStateStore is the fast unencrypted local-settings backend: a single
// JSON file holding one [models.SyncState] per namespace key. Suitable for
// deployments where the continuation token is not considered sensitive.
type fileStateStore struct {
	path      string
	namespace string

	mu     sync.RWMutex
	states map[string]models.SyncState
}

// NewFileStateStore opens (or lazily creates) the settings file at path and
// returns a [SyncStateStore] scoped to namespace. The file is read once at
// construction and rewritten on every save.
func NewFileStateStore(path, namespace string) (SyncStateStore, error) {
	s := &fileStateStore{
		path:      path,
		namespace: namespace,
		states:    make(map[string]models.SyncState),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStateStore) GetContinuationToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[s.namespace].ContinuationToken, nil
}

func (s *fileStateStore) SaveContinuationToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.states[s.namespace]
	st.ContinuationToken = token
	s.states[s.namespace] = st

	return s.persist()
}

func (s *fileStateStore) GetLastSyncTimestamp(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[s.namespace].LastSync, nil
}

func (s *fileStateStore) SaveLastSyncTimestamp(_ context.Context, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.states[s.namespace]
	st.LastSync = ts
	s.states[s.namespace] = st

	return s.persist()
}

func (s *fileStateStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var states map[string]models.SyncState
	if err = json.Unmarshal(data, &states); err != nil {
		return fmt.Errorf("decode state file: %w", err)
	}
	if states == nil {
		states = make(map[string]models.SyncState)
	}

	s.states = states
	return nil
}

func (s *fileStateStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.states, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
