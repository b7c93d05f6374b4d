package service

import "errors"

var (
	// ErrSyncInProgress is returned when a sync is requested while another
	// walk is still running. Walks are strictly serialized; the caller should
	// retry after the running walk finishes.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNoContinuationToken is returned by IncrementalSync when no token has
	// been persisted yet and there is nothing to resume from.
	ErrNoContinuationToken = errors.New("no continuation token persisted")
)
