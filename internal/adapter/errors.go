package adapter

import (
	"errors"
	"fmt"
)

// ErrTokenExpired is returned when the remote service answers 410 Gone,
// signalling that the continuation token can no longer be resumed and the
// caller must restart from a full bootstrap.
var ErrTokenExpired = errors.New("continuation token expired")

// ErrTooManyPages is returned when a single walk exceeds the configured page
// cap without the service handing back a delta link.
var ErrTooManyPages = errors.New("page walk exceeded configured page cap")

// HTTPError is a non-2xx response from the remote change feed that is not a
// token expiry. The walk is aborted and no state is committed.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("delta request failed: http %d: %s", e.StatusCode, e.Body)
}

// DecodeError wraps a failure to parse a page body as a delta response.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode delta page: %v", e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// AuthError wraps a failure to acquire a request credential. It is distinct
// from HTTPError so callers can tell "could not get a token" apart from
// "the feed rejected the request".
type AuthError struct {
	cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("acquire credential: %v", e.cause)
}

func (e *AuthError) Unwrap() error { return e.cause }
