package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/models"
)

const defaultMaxPages = 1000

// GraphFetcherConfig holds the transport settings of the delta-feed client.
type GraphFetcherConfig struct {
	// Timeout bounds a single page request. Zero falls back to 30s.
	Timeout time.Duration

	// MaxPages caps one walk. Zero falls back to 1000.
	MaxPages int
}

type graphPageFetcher struct {
	client   *resty.Client
	tokens   TokenProvider
	maxPages int
	logger   *logger.Logger
}

// NewGraphPageFetcher builds a [PageFetcher] over a Microsoft Graph style
// delta feed. Pages are requested strictly one after another; a fresh bearer
// credential is acquired for every page so walks longer than a token's
// lifetime keep going.
func NewGraphPageFetcher(cfg GraphFetcherConfig, tokens TokenProvider, log *logger.Logger) PageFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}

	cli := resty.New().SetTimeout(cfg.Timeout)

	return &graphPageFetcher{
		client:   cli,
		tokens:   tokens,
		maxPages: cfg.MaxPages,
		logger:   log,
	}
}

func (g *graphPageFetcher) Walk(ctx context.Context, startURL string) (models.WalkResult, error) {
	var result models.WalkResult

	url := startURL
	for page := 1; ; page++ {
		if page > g.maxPages {
			g.logger.Error().
				Str("func", "Walk").
				Int("maxPages", g.maxPages).
				Msg("page cap reached without delta link")
			return models.WalkResult{}, fmt.Errorf("%w (%d)", ErrTooManyPages, g.maxPages)
		}

		delta, err := g.fetchPage(ctx, url)
		if err != nil {
			return models.WalkResult{}, err
		}

		for _, event := range delta.Value {
			if event.IsRemoved() {
				result.DeletedEventIDs = append(result.DeletedEventIDs, event.ID)
			} else {
				result.UpdatedEvents = append(result.UpdatedEvents, event)
			}
		}
		result.Pages++

		g.logger.Debug().
			Str("func", "Walk").
			Int("page", page).
			Int("events", len(delta.Value)).
			Bool("more", delta.NextLink != "").
			Msg("delta page processed")

		if delta.DeltaLink != "" {
			result.DeltaToken = delta.DeltaLink
			return result, nil
		}
		url = delta.NextLink
	}
}

func (g *graphPageFetcher) fetchPage(ctx context.Context, url string) (models.DeltaPage, error) {
	token, err := g.tokens.AcquireToken(ctx)
	if err != nil {
		return models.DeltaPage{}, &AuthError{cause: err}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return models.DeltaPage{}, fmt.Errorf("delta page request: %w", err)
	}
	if err = mapDeltaError(resp); err != nil {
		return models.DeltaPage{}, err
	}

	var delta models.DeltaPage
	if err = json.Unmarshal(resp.Body(), &delta); err != nil {
		return models.DeltaPage{}, &DecodeError{cause: err}
	}

	// a page carries exactly one of the two links: a next link mid-walk or a
	// delta link on the final page
	if delta.NextLink != "" && delta.DeltaLink != "" {
		return models.DeltaPage{}, &DecodeError{cause: errors.New("page carries both a next link and a delta link")}
	}
	if delta.NextLink == "" && delta.DeltaLink == "" {
		return models.DeltaPage{}, &DecodeError{cause: errors.New("page carries neither a next link nor a delta link")}
	}

	return delta, nil
}

func mapDeltaError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusGone {
		return ErrTokenExpired
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &HTTPError{StatusCode: resp.StatusCode(), Body: body}
}
