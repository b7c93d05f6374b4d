package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekondratev/meetsync/internal/adapter"
	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/store"
	"github.com/ekondratev/meetsync/models"
)

const (
	defaultWindowPastMonths   = 3
	defaultWindowFutureMonths = 3
)

// defaultSelectFields is the event projection requested on bootstrap when the
// config leaves it empty.
const defaultSelectFields = "id,subject,start,end,attendees,organizer,isOrganizer,iCalUId,bodyPreview,webLink,location"

// EngineConfig holds the delta-walk policy.
type EngineConfig struct {
	// DeltaEndpoint is the base URL of the calendar delta query.
	DeltaEndpoint string

	// WindowPastMonths and WindowFutureMonths bound the bootstrap window in
	// whole months around "now". Zero falls back to 3 either way.
	WindowPastMonths   int
	WindowFutureMonths int

	// SelectFields is the $select projection sent on bootstrap. Empty falls
	// back to the fields the event model carries.
	SelectFields string
}

type deltaSyncEngine struct {
	cfg     EngineConfig
	fetcher adapter.PageFetcher
	states  store.SyncStateStore
	logger  *logger.Logger

	// now is the engine's clock, replaceable in tests.
	now func() time.Time

	// mu serializes walks. TryLock makes a second caller fail fast instead
	// of queueing behind a long walk.
	mu sync.Mutex
}

// NewDeltaSyncEngine builds the engine over the given page fetcher and state
// store.
func NewDeltaSyncEngine(cfg EngineConfig, fetcher adapter.PageFetcher, states store.SyncStateStore, log *logger.Logger) DeltaSyncEngine {
	if cfg.WindowPastMonths <= 0 {
		cfg.WindowPastMonths = defaultWindowPastMonths
	}
	if cfg.WindowFutureMonths <= 0 {
		cfg.WindowFutureMonths = defaultWindowFutureMonths
	}
	if cfg.SelectFields == "" {
		cfg.SelectFields = defaultSelectFields
	}

	return &deltaSyncEngine{
		cfg:     cfg,
		fetcher: fetcher,
		states:  states,
		logger:  log,
		now:     time.Now,
	}
}

func (e *deltaSyncEngine) Sync(ctx context.Context) (models.SyncResult, error) {
	if !e.mu.TryLock() {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer e.mu.Unlock()

	log := e.runLogger("Sync")

	token, err := e.states.GetContinuationToken(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load continuation token: %w", err)
	}

	if token == "" {
		log.Debug().Msg("no continuation token, bootstrapping")
		return e.fullSyncLocked(ctx, log)
	}

	result, err := e.walkAndCommit(ctx, log, token, false)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, adapter.ErrTokenExpired) {
		return models.SyncResult{}, err
	}

	// the token can expire at any time; absorb the expiry once by clearing
	// state and rebuilding from a fresh bootstrap in the same call
	log.Warn().Msg("continuation token expired, falling back to full sync")
	if err = e.clearState(ctx); err != nil {
		return models.SyncResult{}, err
	}

	return e.fullSyncLocked(ctx, log)
}

func (e *deltaSyncEngine) FullSync(ctx context.Context) (models.SyncResult, error) {
	if !e.mu.TryLock() {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer e.mu.Unlock()

	return e.fullSyncLocked(ctx, e.runLogger("FullSync"))
}

func (e *deltaSyncEngine) IncrementalSync(ctx context.Context) (models.SyncResult, error) {
	if !e.mu.TryLock() {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer e.mu.Unlock()

	log := e.runLogger("IncrementalSync")

	token, err := e.states.GetContinuationToken(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load continuation token: %w", err)
	}
	if token == "" {
		return models.SyncResult{}, ErrNoContinuationToken
	}

	result, err := e.walkAndCommit(ctx, log, token, false)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, adapter.ErrTokenExpired) {
		log.Warn().Msg("continuation token expired, clearing persisted state")
		if clearErr := e.clearState(ctx); clearErr != nil {
			return models.SyncResult{}, clearErr
		}
	}

	return models.SyncResult{}, err
}

func (e *deltaSyncEngine) ResetSync(ctx context.Context) error {
	if !e.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer e.mu.Unlock()

	e.logger.Info().Str("func", "ResetSync").Msg("discarding persisted sync state")
	return e.clearState(ctx)
}

func (e *deltaSyncEngine) LastSyncDate(ctx context.Context) (time.Time, error) {
	return e.states.GetLastSyncTimestamp(ctx)
}

// fullSyncLocked bootstraps the feed. A 410 during bootstrap means the
// service rejected a fresh walk, not an expired token, so it surfaces as an
// ordinary HTTP failure instead of triggering another fallback.
func (e *deltaSyncEngine) fullSyncLocked(ctx context.Context, log *logger.Logger) (models.SyncResult, error) {
	startURL, err := e.bootstrapURL()
	if err != nil {
		return models.SyncResult{}, err
	}

	result, err := e.walkAndCommit(ctx, log, startURL, true)
	if errors.Is(err, adapter.ErrTokenExpired) {
		return models.SyncResult{}, &adapter.HTTPError{
			StatusCode: http.StatusGone,
			Body:       "bootstrap request rejected",
		}
	}
	return result, err
}

// walkAndCommit runs one complete page walk and, only when every page
// succeeded, commits the sync timestamp and then the continuation token.
// The token is written last: once the store holds a new token the preceding
// diff must already have been handed to the caller, so a commit failure must
// never leave the store pointing past an undelivered change window. A stale
// timestamp left behind by a failed token write is informational only. On
// walk failure the persisted state is left exactly as it was.
func (e *deltaSyncEngine) walkAndCommit(ctx context.Context, log *logger.Logger, startURL string, isFull bool) (models.SyncResult, error) {
	walk, err := e.fetcher.Walk(ctx, startURL)
	if err != nil {
		return models.SyncResult{}, err
	}

	if err = e.states.SaveLastSyncTimestamp(ctx, e.now()); err != nil {
		return models.SyncResult{}, fmt.Errorf("commit sync timestamp: %w", err)
	}
	if err = e.states.SaveContinuationToken(ctx, walk.DeltaToken); err != nil {
		return models.SyncResult{}, fmt.Errorf("commit continuation token: %w", err)
	}

	result := models.SyncResult{
		UpdatedEvents:   walk.UpdatedEvents,
		DeletedEventIDs: dedupe(walk.DeletedEventIDs),
		IsFullSync:      isFull,
	}

	log.Info().
		Int("pages", walk.Pages).
		Int("updated", len(result.UpdatedEvents)).
		Int("deleted", len(result.DeletedEventIDs)).
		Bool("full", isFull).
		Msg("sync completed")

	return result, nil
}

// bootstrapURL builds the windowed initial delta query. The window is
// recomputed from the wall clock on every bootstrap.
func (e *deltaSyncEngine) bootstrapURL() (string, error) {
	u, err := url.Parse(e.cfg.DeltaEndpoint)
	if err != nil {
		return "", fmt.Errorf("parse delta endpoint: %w", err)
	}

	now := e.now().UTC()
	q := u.Query()
	q.Set("startDateTime", now.AddDate(0, -e.cfg.WindowPastMonths, 0).Format(time.RFC3339))
	q.Set("endDateTime", now.AddDate(0, e.cfg.WindowFutureMonths, 0).Format(time.RFC3339))
	if fields := strings.TrimSpace(e.cfg.SelectFields); fields != "" {
		q.Set("$select", fields)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (e *deltaSyncEngine) clearState(ctx context.Context) error {
	if err := e.states.SaveContinuationToken(ctx, ""); err != nil {
		return fmt.Errorf("clear continuation token: %w", err)
	}
	if err := e.states.SaveLastSyncTimestamp(ctx, time.Time{}); err != nil {
		return fmt.Errorf("clear sync timestamp: %w", err)
	}
	return nil
}

// runLogger tags every entry of one sync run with a fresh run id so the
// pages of interleaved runs can be told apart in the log stream.
func (e *deltaSyncEngine) runLogger(op string) *logger.Logger {
	child := e.logger.With().
		Str("op", op).
		Str("runID", uuid.NewString()).
		Logger()
	return &logger.Logger{Logger: child}
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}

	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
