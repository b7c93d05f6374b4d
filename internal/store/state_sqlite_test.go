package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekondratev/meetsync/internal/logger"
)

func newMockedSQLiteStore(t *testing.T, namespace string) (SyncStateStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	log := logger.Nop()
	db := &DB{DB: conn, logger: log}

	return NewSQLiteStateStore(db, namespace, log), mock
}

func TestSQLiteStateStore_GetContinuationToken(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "default")

	query := regexp.QuoteMeta("SELECT continuation_token, last_sync FROM sync_state WHERE namespace = ?")
	mock.ExpectQuery(query).
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"continuation_token", "last_sync"}).
			AddRow("delta-token-42", nil))

	token, err := s.GetContinuationToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "delta-token-42", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_GetContinuationToken_NoRow(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "default")

	query := regexp.QuoteMeta("SELECT continuation_token, last_sync FROM sync_state WHERE namespace = ?")
	mock.ExpectQuery(query).
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"continuation_token", "last_sync"}))

	// no row yet means no walk has completed: zero values, no error
	token, err := s.GetContinuationToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_SaveContinuationToken(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "work")

	query := regexp.QuoteMeta(
		"INSERT INTO sync_state (namespace,continuation_token) VALUES (?,?) " +
			"ON CONFLICT(namespace) DO UPDATE SET continuation_token = excluded.continuation_token")
	mock.ExpectExec(query).
		WithArgs("work", "fresh-token").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SaveContinuationToken(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_SaveContinuationToken_ExecError(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "work")

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs("work", "fresh-token").
		WillReturnError(errors.New("database is locked"))

	err := s.SaveContinuationToken(context.Background(), "fresh-token")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_LastSyncTimestampRoundTrip(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "default")

	ts := time.Date(2026, 8, 21, 9, 15, 30, 500000000, time.UTC)
	encoded := ts.Format(time.RFC3339Nano)

	insert := regexp.QuoteMeta(
		"INSERT INTO sync_state (namespace,last_sync) VALUES (?,?) " +
			"ON CONFLICT(namespace) DO UPDATE SET last_sync = excluded.last_sync")
	mock.ExpectExec(insert).
		WithArgs("default", encoded).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveLastSyncTimestamp(context.Background(), ts))

	query := regexp.QuoteMeta("SELECT continuation_token, last_sync FROM sync_state WHERE namespace = ?")
	mock.ExpectQuery(query).
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"continuation_token", "last_sync"}).
			AddRow("", encoded))

	got, err := s.GetLastSyncTimestamp(context.Background())
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_SaveZeroTimestampClears(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "default")

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs("default", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SaveLastSyncTimestamp(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStateStore_MalformedTimestamp(t *testing.T) {
	s, mock := newMockedSQLiteStore(t, "default")

	query := regexp.QuoteMeta("SELECT continuation_token, last_sync FROM sync_state WHERE namespace = ?")
	mock.ExpectQuery(query).
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"continuation_token", "last_sync"}).
			AddRow("", "yesterday at noon"))

	_, err := s.GetLastSyncTimestamp(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}
