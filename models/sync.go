package models

import "time"

// SyncState is the persisted resumption state of the delta feed.
//
// ContinuationToken is an opaque capability issued by the remote service;
// it is never parsed, only replayed verbatim. An empty token forces the next
// sync to bootstrap. LastSync is informational and surfaced to the caller.
type SyncState struct {
	ContinuationToken string    `json:"continuation_token,omitempty"`
	LastSync          time.Time `json:"last_sync,omitempty"`
}

// SyncResult is the aggregated diff returned by one sync call.
//
// UpdatedEvents preserves server emission order across pages. Duplicate ids
// across pages are permitted; the caller applies last-write-wins when merging
// into its own store. DeletedEventIDs carries tombstone ids, deduplicated.
type SyncResult struct {
	UpdatedEvents   []CalendarEvent `json:"updated_events"`
	DeletedEventIDs []string        `json:"deleted_event_ids"`
	IsFullSync      bool            `json:"is_full_sync"`
}
