package adapter

import (
	"context"

	"github.com/ekondratev/meetsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenProvider yields a bearer credential for a single outbound request.
// Implementations are expected to return a currently valid token on every
// call; long page walks call AcquireToken once per page so a token that
// expires mid-walk is replaced transparently.
type TokenProvider interface {
	AcquireToken(ctx context.Context) (string, error)
}

// PageFetcher walks the remote delta feed starting from startURL, following
// continuation pages strictly in order until the service hands back a new
// delta link.
//
// Walk returns [ErrTokenExpired] when the service answers 410 Gone, an
// *HTTPError for any other non-2xx status, and a *DecodeError when a page
// body cannot be parsed. On any error the partial results are discarded.
type PageFetcher interface {
	Walk(ctx context.Context, startURL string) (models.WalkResult, error)
}
