package http

import (
	"errors"
	"net/http"

	"github.com/ekondratev/meetsync/internal/adapter"
	"github.com/ekondratev/meetsync/internal/service"
)

// statusFromError maps engine errors onto control API status codes. Remote
// feed failures surface as 502 so callers can tell "the feed is broken" apart
// from "the engine is broken".
func statusFromError(err error) int {
	var (
		httpErr   *adapter.HTTPError
		authErr   *adapter.AuthError
		decodeErr *adapter.DecodeError
	)

	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoContinuationToken):
		return http.StatusBadRequest
	case errors.Is(err, adapter.ErrTokenExpired):
		return http.StatusConflict
	case errors.As(err, &httpErr), errors.As(err, &authErr), errors.As(err, &decodeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
