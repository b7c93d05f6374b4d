package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/models"
)

// sqliteStateStore keeps sync state in a local SQLite table, one row per
// namespace. Timestamps are stored as RFC3339Nano text to survive the
// driver's loose column typing.
type sqliteStateStore struct {
	db        *DB
	namespace string
	logger    *logger.Logger
}

func NewSQLiteStateStore(db *DB, namespace string, log *logger.Logger) SyncStateStore {
	return &sqliteStateStore{
		db:        db,
		namespace: namespace,
		logger:    log,
	}
}

func (s *sqliteStateStore) GetContinuationToken(ctx context.Context) (string, error) {
	st, err := s.getState(ctx)
	if err != nil {
		return "", err
	}
	return st.ContinuationToken, nil
}

func (s *sqliteStateStore) SaveContinuationToken(ctx context.Context, token string) error {
	query, args, err := sq.
		Insert("sync_state").
		Columns("namespace", "continuation_token").
		Values(s.namespace, token).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET continuation_token = excluded.continuation_token").
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "SaveContinuationToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SaveContinuationToken").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteStateStore) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	st, err := s.getState(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return st.LastSync, nil
}

func (s *sqliteStateStore) SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error {
	var lastSync any
	if !ts.IsZero() {
		lastSync = ts.UTC().Format(time.RFC3339Nano)
	}

	query, args, err := sq.
		Insert("sync_state").
		Columns("namespace", "last_sync").
		Values(s.namespace, lastSync).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET last_sync = excluded.last_sync").
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "SaveLastSyncTimestamp").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SaveLastSyncTimestamp").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteStateStore) getState(ctx context.Context) (models.SyncState, error) {
	query, args, err := sq.
		Select("continuation_token", "last_sync").
		From("sync_state").
		Where(sq.Eq{"namespace": s.namespace}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "getState").Msg("error building query")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		token    string
		lastSync sql.NullString
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&token, &lastSync); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// no walk has completed yet for this namespace
			return models.SyncState{}, nil
		}
		s.logger.Err(err).Str("func", "getState").Msg("error scanning row")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	st := models.SyncState{ContinuationToken: token}
	if lastSync.Valid && lastSync.String != "" {
		ts, parseErr := time.Parse(time.RFC3339Nano, lastSync.String)
		if parseErr != nil {
			s.logger.Err(parseErr).Str("func", "getState").Msg("error parsing last_sync timestamp")
			return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, parseErr)
		}
		st.LastSync = ts
	}

	return st, nil
}
