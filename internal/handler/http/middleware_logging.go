package http

import (
	"net/http"
	"time"

	"github.com/ekondratev/meetsync/internal/logger"
)

// withLogging writes one access-log entry per request, with the final status
// and body size captured by the responseWriter wrapper.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
