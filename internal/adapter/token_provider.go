package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// staticTokenProvider hands out a single pre-acquired bearer token. Useful
// for local runs and tests where a token has been obtained out of band.
type staticTokenProvider struct {
	token string
}

func NewStaticTokenProvider(token string) TokenProvider {
	return &staticTokenProvider{token: strings.TrimSpace(token)}
}

func (p *staticTokenProvider) AcquireToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", &AuthError{cause: errors.New("no bearer token configured")}
	}
	if err := checkJWTExpiry(p.token); err != nil {
		return "", &AuthError{cause: err}
	}
	return p.token, nil
}

// checkJWTExpiry rejects a token whose exp claim has already passed. The
// signature is not verified; the remote service does that. Tokens that are
// not JWTs pass through untouched.
func checkJWTExpiry(tokenString string) error {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		// opaque tokens are fine, the feed will judge them
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("bearer token expired at %s", exp.Format(time.RFC3339))
	}
	return nil
}

// OAuthConfig holds the client-credentials settings for automatic token
// acquisition.
type OAuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// oauthTokenProvider acquires bearer tokens via the OAuth2 client-credentials
// flow. The underlying TokenSource caches tokens and refreshes them shortly
// before expiry, so per-page AcquireToken calls are cheap.
type oauthTokenProvider struct {
	source oauth2.TokenSource
}

func NewOAuthTokenProvider(ctx context.Context, cfg OAuthConfig) TokenProvider {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}

	return &oauthTokenProvider{source: cc.TokenSource(ctx)}
}

func (p *oauthTokenProvider) AcquireToken(_ context.Context) (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", &AuthError{cause: err}
	}
	return token.AccessToken, nil
}
