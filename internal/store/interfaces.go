package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/state_store_mock.go -package=mock

// SyncStateStore persists the resumption state of the calendar delta feed
// across process restarts: an opaque continuation token and the timestamp of
// the last successful sync.
//
// Absence is encoded as the zero value: an empty token string or a zero
// time.Time. Saving the zero value clears the field. Implementations must be
// safe for concurrent use; the sync engine itself serializes walks, but
// read-only accessors (e.g. the control API's status endpoint) may run
// concurrently with a sync.
type SyncStateStore interface {
	// GetContinuationToken returns the persisted continuation token, or an
	// empty string if no walk has completed yet.
	GetContinuationToken(ctx context.Context) (string, error)

	// SaveContinuationToken persists the continuation token. An empty token
	// clears the persisted value, forcing the next sync to bootstrap.
	SaveContinuationToken(ctx context.Context, token string) error

	// GetLastSyncTimestamp returns the instant of the last successful sync,
	// or the zero time if none is recorded.
	GetLastSyncTimestamp(ctx context.Context) (time.Time, error)

	// SaveLastSyncTimestamp persists the instant of the last successful
	// sync. The zero time clears the persisted value.
	SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error
}
