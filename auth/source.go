package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// TokenSource supplies a usable token for a request, renewing as needed. The
// dispatcher consults it before every call.
type TokenSource interface {
	// Token returns a non-expired token, or an error when none can be
	// obtained.
	Token(ctx context.Context) (*Token, error)
}

// StaticSource wraps a fixed token. It never renews; once the token expires
// every call fails with ErrTokenExpired.
func StaticSource(tok *Token) TokenSource {
	return staticSource{tok}
}

type staticSource struct {
	tok *Token
}

func (s staticSource) Token(context.Context) (*Token, error) {
	if s.tok.Expired() {
		return nil, ErrTokenExpired
	}
	return s.tok, nil
}

// reuseSource hands out the held token until it expires, then renews it.
// Renewal runs under the mutex so concurrent callers trigger at most one
// refresh.
type reuseSource struct {
	mu    sync.Mutex
	tok   *Token
	renew func(ctx context.Context, prev *Token) (*Token, error)
}

func (s *reuseSource) Token(ctx context.Context) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tok != nil && !s.tok.Expired() {
		return s.tok, nil
	}
	tok, err := s.renew(ctx, s.tok)
	if err != nil {
		return nil, err
	}
	s.tok = tok
	return tok, nil
}

// GenerateState generates a random state parameter for CSRF protection on the
// authorization redirect.
func GenerateState() string {
	return uuid.New().String()
}
