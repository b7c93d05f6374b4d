package http

import (
	"net/http"
	"time"

	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/utils"
	"github.com/ekondratev/meetsync/models"
)

// syncStatusResponse is the body of GET /api/sync/status.
type syncStatusResponse struct {
	// LastSync is the instant of the last successful sync, nil when no sync
	// has completed yet.
	LastSync *time.Time `json:"last_sync"`
	Synced   bool       `json:"synced"`
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	lastSync, err := h.engine.LastSyncDate(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("error reading last sync date")
		http.Error(w, "error reading last sync date", http.StatusInternalServerError)
		return
	}

	response := syncStatusResponse{Synced: !lastSync.IsZero()}
	if response.Synced {
		response.LastSync = &lastSync
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// triggerSync runs one sync and returns the aggregated diff. The optional
// mode query parameter forces "full" or "incremental"; the default lets the
// engine decide based on the persisted token.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var (
		result models.SyncResult
		err    error
	)

	mode := r.URL.Query().Get("mode")
	switch mode {
	case "", "auto":
		result, err = h.engine.Sync(ctx)
	case "full":
		result, err = h.engine.FullSync(ctx)
	case "incremental":
		result, err = h.engine.IncrementalSync(ctx)
	default:
		log.Error().Str("func", "*Handler.triggerSync").Str("mode", mode).Msg("unknown sync mode")
		http.Error(w, "unknown sync mode", http.StatusBadRequest)
		return
	}

	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Str("mode", mode).Msg("sync failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) resetSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.engine.ResetSync(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.resetSync").Msg("error resetting sync state")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
