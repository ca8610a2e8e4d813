package auth

import "fmt"

var (
	ErrExchange       = fmt.Errorf("token exchange failed")
	ErrRefresh        = fmt.Errorf("token refresh failed")
	ErrNoRefreshToken = fmt.Errorf("no refresh token available")
	ErrTokenExpired   = fmt.Errorf("access token expired")
	ErrInvalidState   = fmt.Errorf("invalid state parameter")
	ErrAccessDenied   = fmt.Errorf("authorization denied")
)

// Error is a rejection from the accounts service token endpoint.
type Error struct {
	// Status is the HTTP status code of the rejection.
	Status int
	// Code is the OAuth error code, e.g. "invalid_grant".
	Code string
	// Description is the human-readable error_description, if provided.
	Description string

	kind error
}

func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%v: %s (%s)", e.kind, e.Code, e.Description)
	}
	return fmt.Sprintf("%v: %s", e.kind, e.Code)
}

func (e *Error) Unwrap() error { return e.kind }
