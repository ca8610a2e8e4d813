package auth

import (
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/desertthunder/spx/models"
)

func TestOAuth2Interop(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Round Trip", func(t *testing.T) {
		tok := &Token{
			AccessToken:  "acc",
			TokenType:    "Bearer",
			RefreshToken: "ref",
			Scopes:       []models.Scope{models.ScopeUserLibraryRead},
			ExpiresAt:    expiry,
		}

		back := FromOAuth2(tok.OAuth2())
		if back.AccessToken != "acc" || back.RefreshToken != "ref" {
			t.Errorf("credentials lost in round trip: %+v", back)
		}
		if !back.ExpiresAt.Equal(expiry) {
			t.Errorf("unexpected expiry: %v", back.ExpiresAt)
		}
		if len(back.Scopes) != 1 || back.Scopes[0] != models.ScopeUserLibraryRead {
			t.Errorf("scopes lost in round trip: %v", back.Scopes)
		}
	})

	t.Run("FromOAuth2 Without Scope Extra", func(t *testing.T) {
		tok := FromOAuth2(&oauth2.Token{AccessToken: "acc", TokenType: "Bearer"})
		if len(tok.Scopes) != 0 {
			t.Errorf("expected no scopes, got %v", tok.Scopes)
		}
	})

	t.Run("OAuth2Config", func(t *testing.T) {
		flow := &AuthorizationCodeFlow{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost:8080/callback",
		}
		cfg := flow.OAuth2Config([]models.Scope{models.ScopeUserLibraryRead, models.ScopeUserReadEmail})

		if cfg.Endpoint.AuthURL != AuthURL {
			t.Errorf("unexpected auth URL: %s", cfg.Endpoint.AuthURL)
		}
		if cfg.Endpoint.TokenURL != TokenURL {
			t.Errorf("unexpected token URL: %s", cfg.Endpoint.TokenURL)
		}
		if len(cfg.Scopes) != 2 || cfg.Scopes[0] != "user-library-read" {
			t.Errorf("unexpected scopes: %v", cfg.Scopes)
		}
	})
}
