package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ekondratev/meetsync/internal/adapter"
	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/mock"
	"github.com/ekondratev/meetsync/internal/service"
	"github.com/ekondratev/meetsync/models"
)

func newTestHandler(t *testing.T) (*mock.MockDeltaSyncEngine, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := mock.NewMockDeltaSyncEngine(ctrl)
	h := NewHandler(engine, "test-version", logger.Nop())

	return engine, h.Init()
}

// ── POST /api/sync/ ──────────────────────────────────────────────────────────

func TestTriggerSync_Auto(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().Sync(gomock.Any()).Return(models.SyncResult{
		UpdatedEvents:   []models.CalendarEvent{{ID: "ev-1", Subject: "Standup"}},
		DeletedEventIDs: []string{"ev-2"},
		IsFullSync:      true,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsFullSync)
	require.Len(t, result.UpdatedEvents, 1)
	assert.Equal(t, "ev-1", result.UpdatedEvents[0].ID)
	assert.Equal(t, []string{"ev-2"}, result.DeletedEventIDs)
}

func TestTriggerSync_FullMode(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().FullSync(gomock.Any()).Return(models.SyncResult{IsFullSync: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/?mode=full", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerSync_IncrementalMode(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().IncrementalSync(gomock.Any()).Return(models.SyncResult{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/?mode=incremental", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerSync_UnknownMode(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/?mode=sideways", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerSync_InProgressConflict(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().Sync(gomock.Any()).Return(models.SyncResult{}, service.ErrSyncInProgress)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTriggerSync_FeedFailureIsBadGateway(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().Sync(gomock.Any()).
		Return(models.SyncResult{}, &adapter.HTTPError{StatusCode: 500, Body: "remote boom"})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestTriggerSync_NoTokenIsBadRequest(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().IncrementalSync(gomock.Any()).
		Return(models.SyncResult{}, service.ErrNoContinuationToken)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/?mode=incremental", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── GET /api/sync/status ─────────────────────────────────────────────────────

func TestSyncStatus_Synced(t *testing.T) {
	engine, router := newTestHandler(t)

	lastSync := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	engine.EXPECT().LastSyncDate(gomock.Any()).Return(lastSync, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status syncStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Synced)
	require.NotNil(t, status.LastSync)
	assert.True(t, lastSync.Equal(*status.LastSync))
}

func TestSyncStatus_NeverSynced(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().LastSyncDate(gomock.Any()).Return(time.Time{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status syncStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Synced)
	assert.Nil(t, status.LastSync)
}

func TestSyncStatus_StoreFailure(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().LastSyncDate(gomock.Any()).Return(time.Time{}, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── DELETE /api/sync/ ────────────────────────────────────────────────────────

func TestResetSync(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().ResetSync(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/sync/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResetSync_InProgressConflict(t *testing.T) {
	engine, router := newTestHandler(t)

	engine.EXPECT().ResetSync(gomock.Any()).Return(service.ErrSyncInProgress)

	req := httptest.NewRequest(http.MethodDelete, "/api/sync/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
