// OAuth 2.0 grant flow implementations for the Spotify accounts service.
//
// Spotify references:
// https://developer.spotify.com/documentation/web-api/tutorials/client-credentials-flow
// https://developer.spotify.com/documentation/web-api/tutorials/code-flow
// https://developer.spotify.com/documentation/web-api/tutorials/code-pkce-flow
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spx/models"
)

// BasicAuth builds the Basic authorization header value from the client ID
// and secret.
func BasicAuth(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}

// requestToken POSTs a form to the token endpoint and decodes the response.
// Non-200 responses become a *Error of the given kind.
func requestToken(ctx context.Context, hc *http.Client, tokenURL, basic string, form url.Values, kind error) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if basic != "" {
		req.Header.Set("Authorization", "Basic "+basic)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Code        string `json:"error"`
			Description string `json:"error_description"`
		}
		_ = json.Unmarshal(body, &payload)
		if payload.Code == "" {
			payload.Code = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{
			Status:      resp.StatusCode,
			Code:        payload.Code,
			Description: payload.Description,
			kind:        kind,
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return tr.token(), nil
}

// ClientCredentialsFlow obtains app-only tokens. The resulting tokens carry
// no scopes and no refresh token; renewal re-runs the full exchange.
type ClientCredentialsFlow struct {
	ClientID     string
	ClientSecret string

	// HTTPClient executes token requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// TokenURL overrides the accounts service token endpoint.
	TokenURL string
	// Logger, when set, receives debug output for token operations.
	Logger *log.Logger
}

// Exchange requests an access token with grant_type=client_credentials.
func (f *ClientCredentialsFlow) Exchange(ctx context.Context) (*Token, error) {
	if f.Logger != nil {
		f.Logger.Debug("requesting access token", "grant", "client_credentials")
	}
	form := url.Values{"grant_type": {"client_credentials"}}
	return requestToken(ctx, f.client(), f.tokenURL(), BasicAuth(f.ClientID, f.ClientSecret), form, ErrExchange)
}

// Source returns a TokenSource that re-exchanges whenever the held token has
// expired. initial may be nil.
func (f *ClientCredentialsFlow) Source(initial *Token) TokenSource {
	return &reuseSource{
		tok: initial,
		renew: func(ctx context.Context, _ *Token) (*Token, error) {
			return f.Exchange(ctx)
		},
	}
}

func (f *ClientCredentialsFlow) client() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}

func (f *ClientCredentialsFlow) tokenURL() string {
	if f.TokenURL != "" {
		return f.TokenURL
	}
	return TokenURL
}

// AuthorizationCodeFlow obtains user-authorized tokens using a client secret.
type AuthorizationCodeFlow struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// HTTPClient executes token requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// TokenURL overrides the accounts service token endpoint.
	TokenURL string
	// Logger, when set, receives debug output for token operations.
	Logger *log.Logger
}

// AuthURLOption customizes an authorization URL.
type AuthURLOption func(url.Values)

// WithShowDialog forces the user to re-approve the app even if they already
// have.
func WithShowDialog() AuthURLOption {
	return func(q url.Values) { q.Set("show_dialog", "true") }
}

func buildAuthURL(clientID, redirectURI, state string, scopes []models.Scope, opts ...AuthURLOption) string {
	q := url.Values{
		"client_id":     {clientID},
		"response_type": {"code"},
		"redirect_uri":  {redirectURI},
	}
	if state != "" {
		q.Set("state", state)
	}
	if len(scopes) > 0 {
		q.Set("scope", models.JoinScopes(scopes))
	}
	for _, opt := range opts {
		opt(q)
	}
	return AuthURL + "?" + q.Encode()
}

// AuthURL builds the URL the user visits to grant permission. Pure; no I/O.
func (f *AuthorizationCodeFlow) AuthURL(state string, scopes []models.Scope, opts ...AuthURLOption) string {
	return buildAuthURL(f.ClientID, f.RedirectURI, state, scopes, opts...)
}

// Exchange trades the authorization code returned on the redirect for a
// token. The remote contract requires a refresh token for this grant; a
// response without one is rejected.
func (f *AuthorizationCodeFlow) Exchange(ctx context.Context, code string) (*Token, error) {
	if f.Logger != nil {
		f.Logger.Debug("requesting access token", "grant", "authorization_code")
	}
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {f.RedirectURI},
	}
	tok, err := requestToken(ctx, f.client(), f.tokenURL(), BasicAuth(f.ClientID, f.ClientSecret), form, ErrExchange)
	if err != nil {
		return nil, err
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token response missing refresh_token", ErrExchange)
	}
	return tok, nil
}

// Refresh trades the token's refresh token for a fresh access token. When the
// response omits a rotated refresh token, the prior one is retained.
func (f *AuthorizationCodeFlow) Refresh(ctx context.Context, tok *Token) (*Token, error) {
	if tok == nil || tok.RefreshToken == "" {
		return nil, ErrNoRefreshToken
	}
	if f.Logger != nil {
		f.Logger.Debug("refreshing access token", "grant", "authorization_code")
	}
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {tok.RefreshToken},
	}
	next, err := requestToken(ctx, f.client(), f.tokenURL(), BasicAuth(f.ClientID, f.ClientSecret), form, ErrRefresh)
	if err != nil {
		return nil, err
	}
	if next.RefreshToken == "" {
		next.RefreshToken = tok.RefreshToken
	}
	return next, nil
}

// Source returns a TokenSource seeded with initial that refreshes expired
// tokens, retaining the refresh token across renewals.
func (f *AuthorizationCodeFlow) Source(initial *Token) TokenSource {
	return &reuseSource{tok: initial, renew: f.Refresh}
}

func (f *AuthorizationCodeFlow) client() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}

func (f *AuthorizationCodeFlow) tokenURL() string {
	if f.TokenURL != "" {
		return f.TokenURL
	}
	return TokenURL
}

// PKCEFlow obtains user-authorized tokens without a client secret, proving
// possession of a code verifier instead.
type PKCEFlow struct {
	ClientID    string
	RedirectURI string

	// HTTPClient executes token requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// TokenURL overrides the accounts service token endpoint.
	TokenURL string
	// Logger, when set, receives debug output for token operations.
	Logger *log.Logger
}

// AuthURL builds the URL the user visits to grant permission. The challenge
// must be derived from the verifier later passed to Exchange; see
// [Challenge]. Pure; no I/O.
func (f *PKCEFlow) AuthURL(state, challenge string, scopes []models.Scope, opts ...AuthURLOption) string {
	withChallenge := func(q url.Values) {
		q.Set("code_challenge_method", "S256")
		q.Set("code_challenge", challenge)
	}
	return buildAuthURL(f.ClientID, f.RedirectURI, state, scopes, append(opts, withChallenge)...)
}

// Exchange trades the authorization code and its code verifier for a token.
// The client ID travels in the body; no Basic header is sent.
func (f *PKCEFlow) Exchange(ctx context.Context, code, verifier string) (*Token, error) {
	if f.Logger != nil {
		f.Logger.Debug("requesting access token", "grant", "authorization_code", "pkce", true)
	}
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {f.RedirectURI},
		"client_id":     {f.ClientID},
		"code_verifier": {verifier},
	}
	tok, err := requestToken(ctx, f.client(), f.tokenURL(), "", form, ErrExchange)
	if err != nil {
		return nil, err
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token response missing refresh_token", ErrExchange)
	}
	return tok, nil
}

// Refresh trades the token's refresh token for a fresh access token, sending
// the client ID in the body as the PKCE variant requires. When the response
// omits a rotated refresh token, the prior one is retained.
func (f *PKCEFlow) Refresh(ctx context.Context, tok *Token) (*Token, error) {
	if tok == nil || tok.RefreshToken == "" {
		return nil, ErrNoRefreshToken
	}
	if f.Logger != nil {
		f.Logger.Debug("refreshing access token", "grant", "authorization_code", "pkce", true)
	}
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {tok.RefreshToken},
		"client_id":     {f.ClientID},
	}
	next, err := requestToken(ctx, f.client(), f.tokenURL(), "", form, ErrRefresh)
	if err != nil {
		return nil, err
	}
	if next.RefreshToken == "" {
		next.RefreshToken = tok.RefreshToken
	}
	return next, nil
}

// Source returns a TokenSource seeded with initial that refreshes expired
// tokens.
func (f *PKCEFlow) Source(initial *Token) TokenSource {
	return &reuseSource{tok: initial, renew: f.Refresh}
}

func (f *PKCEFlow) client() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}

func (f *PKCEFlow) tokenURL() string {
	if f.TokenURL != "" {
		return f.TokenURL
	}
	return TokenURL
}
