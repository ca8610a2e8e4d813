package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrAuthentication = fmt.Errorf("authentication failed")
	ErrPermission     = fmt.Errorf("insufficient scope")
	ErrNotFound       = fmt.Errorf("resource not found")
	ErrRateLimited    = fmt.Errorf("rate limited")
	ErrAPI            = fmt.Errorf("API request failed")
	ErrDecode         = fmt.Errorf("failed to decode response")
)

// Error is a non-2xx response from the Web API, carrying the remote error
// payload. It unwraps to one of the package sentinels depending on the
// status: 401 to ErrAuthentication, 403 to ErrPermission, 404 to ErrNotFound,
// everything else to ErrAPI.
type Error struct {
	// Status is the HTTP status code.
	Status int
	// Message is the remote error message, if provided.
	Message string

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.kind }

// RateLimitError is a 429 response. The client never retries; callers decide
// whether to wait RetryAfter and reissue the request.
type RateLimitError struct {
	// Message is the remote error message, if provided.
	Message string
	// RetryAfter is the duration from the response's Retry-After header, zero
	// when the header was absent or unparseable.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%v: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// DecodeError reports a response body that did not match the expected schema,
// distinct from remote-reported errors: the service accepted the request but
// the client could not parse what came back.
type DecodeError struct {
	// Field is the offending JSON field, when it can be determined.
	Field string

	cause error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: field %q: %v", ErrDecode, e.Field, e.cause)
	}
	return fmt.Sprintf("%v: %v", ErrDecode, e.cause)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.cause} }

func newDecodeError(err error) *DecodeError {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &DecodeError{Field: te.Field, cause: err}
	}
	return &DecodeError{cause: err}
}
