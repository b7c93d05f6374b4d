package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ekondratev/meetsync/internal/crypto"
)

// secureStateStore encrypts the continuation token before handing it to the
// underlying backend, so the raw token never touches disk. Timestamps carry
// no secrets and pass through unchanged.
type secureStateStore struct {
	inner  SyncStateStore
	cipher crypto.TokenCipher
}

func NewSecureStateStore(inner SyncStateStore, cipher crypto.TokenCipher) SyncStateStore {
	return &secureStateStore{inner: inner, cipher: cipher}
}

func (s *secureStateStore) GetContinuationToken(ctx context.Context) (string, error) {
	blob, err := s.inner.GetContinuationToken(ctx)
	if err != nil {
		return "", err
	}
	if blob == "" {
		return "", nil
	}

	token, err := s.cipher.Open(blob)
	if err != nil {
		return "", fmt.Errorf("decrypt continuation token: %w", err)
	}
	return token, nil
}

func (s *secureStateStore) SaveContinuationToken(ctx context.Context, token string) error {
	// an empty token means "clear"; keep it empty so absence stays observable
	if token == "" {
		return s.inner.SaveContinuationToken(ctx, "")
	}

	blob, err := s.cipher.Seal(token)
	if err != nil {
		return fmt.Errorf("encrypt continuation token: %w", err)
	}
	return s.inner.SaveContinuationToken(ctx, blob)
}

func (s *secureStateStore) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	return s.inner.GetLastSyncTimestamp(ctx)
}

func (s *secureStateStore) SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error {
	return s.inner.SaveLastSyncTimestamp(ctx, ts)
}
