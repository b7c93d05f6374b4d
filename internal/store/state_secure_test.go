package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekondratev/meetsync/internal/crypto"
)

func newSecureFileStore(t *testing.T, path string) SyncStateStore {
	t.Helper()

	inner, err := NewFileStateStore(path, "default")
	require.NoError(t, err)

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)

	return NewSecureStateStore(inner, crypto.NewTokenCipher("correct horse battery staple", salt))
}

func TestSecureStateStore_TokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := newSecureFileStore(t, path)
	ctx := context.Background()

	want := "https://graph.example.com/delta?$deltatoken=secret-opaque-value"
	require.NoError(t, s.SaveContinuationToken(ctx, want))

	got, err := s.GetContinuationToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSecureStateStore_PlaintextNotOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := newSecureFileStore(t, path)
	ctx := context.Background()

	token := "$deltatoken=must-not-appear-in-file"
	require.NoError(t, s.SaveContinuationToken(ctx, token))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), token)
}

func TestSecureStateStore_EmptyTokenPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := newSecureFileStore(t, path)
	ctx := context.Background()

	require.NoError(t, s.SaveContinuationToken(ctx, "stale"))
	require.NoError(t, s.SaveContinuationToken(ctx, ""))

	// clearing stays observable as the empty string, not an encrypted blob
	got, err := s.GetContinuationToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSecureStateStore_WrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)

	inner, err := NewFileStateStore(path, "default")
	require.NoError(t, err)
	writer := NewSecureStateStore(inner, crypto.NewTokenCipher("passphrase-one", salt))
	require.NoError(t, writer.SaveContinuationToken(ctx, "token"))

	reader := NewSecureStateStore(inner, crypto.NewTokenCipher("passphrase-two", salt))
	_, err = reader.GetContinuationToken(ctx)
	assert.Error(t, err)
}
