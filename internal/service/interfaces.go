package service

import (
	"context"
	"time"

	"github.com/ekondratev/meetsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeltaSyncEngine drives the calendar delta feed: it decides between a full
// bootstrap and an incremental resume, walks the feed to completion, and
// persists the continuation token only after a fully successful walk.
//
// All mutating methods serialize on an internal lock; a second concurrent
// call fails fast with [ErrSyncInProgress] instead of queueing.
type DeltaSyncEngine interface {
	// Sync resumes from the persisted continuation token, or bootstraps when
	// none exists. An expired token is absorbed exactly once: state is
	// cleared and one full bootstrap runs in the same call.
	Sync(ctx context.Context) (models.SyncResult, error)

	// FullSync bootstraps unconditionally, ignoring any persisted token. The
	// bootstrap window is recomputed from the wall clock at call time.
	FullSync(ctx context.Context) (models.SyncResult, error)

	// IncrementalSync resumes from the persisted token and fails with
	// [ErrNoContinuationToken] when none exists. On token expiry it clears
	// the persisted state and returns the expiry error to the caller.
	IncrementalSync(ctx context.Context) (models.SyncResult, error)

	// ResetSync discards the persisted continuation token and timestamp,
	// forcing the next Sync to bootstrap.
	ResetSync(ctx context.Context) error

	// LastSyncDate returns the instant of the last successful sync, or the
	// zero time when none is recorded.
	LastSyncDate(ctx context.Context) (time.Time, error)
}

// SyncJob periodically triggers the engine in the background.
type SyncJob interface {
	// Start launches the background loop with the given interval. A prior
	// running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. No-op when the
	// job is not running.
	Stop()
}
