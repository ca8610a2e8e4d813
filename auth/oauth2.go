package auth

import (
	"golang.org/x/oauth2"

	"github.com/desertthunder/spx/models"
)

// OAuth2 converts the token to its golang.org/x/oauth2 representation, for
// code built on that package's clients and sources. Granted scopes are
// carried in the "scope" extra field.
func (t *Token) OAuth2() *oauth2.Token {
	ot := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt,
	}
	if len(t.Scopes) > 0 {
		ot = ot.WithExtra(map[string]any{"scope": models.JoinScopes(t.Scopes)})
	}
	return ot
}

// FromOAuth2 builds a Token from its golang.org/x/oauth2 representation,
// reading granted scopes from the "scope" extra field when present.
func FromOAuth2(ot *oauth2.Token) *Token {
	t := &Token{
		AccessToken:  ot.AccessToken,
		TokenType:    ot.TokenType,
		RefreshToken: ot.RefreshToken,
		ExpiresAt:    ot.Expiry,
	}
	if scope, ok := ot.Extra("scope").(string); ok {
		t.Scopes = models.SplitScopes(scope)
	}
	return t
}

// OAuth2Config returns the golang.org/x/oauth2 configuration equivalent to
// the flow, pointed at the Spotify accounts service endpoints.
func (f *AuthorizationCodeFlow) OAuth2Config(scopes []models.Scope) *oauth2.Config {
	cfg := &oauth2.Config{
		ClientID:     f.ClientID,
		ClientSecret: f.ClientSecret,
		RedirectURL:  f.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: f.tokenURL(),
		},
	}
	for _, s := range scopes {
		cfg.Scopes = append(cfg.Scopes, string(s))
	}
	return cfg
}
