package auth

import (
	"time"

	"github.com/desertthunder/spx/models"
)

// Spotify accounts service endpoints.
const (
	AuthURL  = "https://accounts.spotify.com/authorize"
	TokenURL = "https://accounts.spotify.com/api/token"
)

var timeNow = time.Now

// Token is a bearer credential issued by the accounts service. It is an
// immutable value; refreshing yields a new Token.
type Token struct {
	// AccessToken is the opaque bearer token sent with API requests.
	AccessToken string
	// TokenType is how the token may be used, always "Bearer".
	TokenType string
	// RefreshToken renews the access token once it expires. Empty for the
	// client credentials flow.
	RefreshToken string
	// Scopes are the permission scopes granted for this token. Empty for the
	// client credentials flow.
	Scopes []models.Scope
	// ExpiresAt is the absolute expiry, derived from the token response's
	// expires_in at issuance.
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has been reached. The boundary
// instant counts as expired.
func (t *Token) Expired() bool {
	return !timeNow().Before(t.ExpiresAt)
}

// HasScope reports whether the token was granted the given scope.
func (t *Token) HasScope(scope models.Scope) bool {
	for _, s := range t.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// tokenResponse is the accounts service token endpoint payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

func (r tokenResponse) token() *Token {
	return &Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
		Scopes:       models.SplitScopes(r.Scope),
		ExpiresAt:    timeNow().Add(time.Duration(r.ExpiresIn) * time.Second),
	}
}
