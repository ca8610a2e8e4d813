package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTokenSources(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("StaticSource", func(t *testing.T) {
		restore := timeNow
		defer func() { timeNow = restore }()
		timeNow = func() time.Time { return base }

		t.Run("Valid Token", func(t *testing.T) {
			source := StaticSource(&Token{AccessToken: "abc", ExpiresAt: base.Add(time.Hour)})
			tok, err := source.Token(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tok.AccessToken != "abc" {
				t.Errorf("unexpected token: %s", tok.AccessToken)
			}
		})

		t.Run("Expired Token", func(t *testing.T) {
			source := StaticSource(&Token{AccessToken: "abc", ExpiresAt: base.Add(-time.Hour)})
			if _, err := source.Token(context.Background()); !errors.Is(err, ErrTokenExpired) {
				t.Errorf("expected ErrTokenExpired, got %v", err)
			}
		})
	})

	t.Run("ReuseSource", func(t *testing.T) {
		restore := timeNow
		defer func() { timeNow = restore }()
		timeNow = func() time.Time { return base }

		t.Run("Renews Expired Token", func(t *testing.T) {
			renewed := &Token{AccessToken: "new", ExpiresAt: base.Add(time.Hour)}
			var calls int
			source := &reuseSource{
				tok: &Token{AccessToken: "old", ExpiresAt: base.Add(-time.Minute)},
				renew: func(ctx context.Context, prev *Token) (*Token, error) {
					calls++
					if prev.AccessToken != "old" {
						t.Errorf("expected prior token to be passed to renew, got %s", prev.AccessToken)
					}
					return renewed, nil
				},
			}

			tok, err := source.Token(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tok.AccessToken != "new" {
				t.Errorf("unexpected token: %s", tok.AccessToken)
			}

			// Subsequent calls reuse the renewed token.
			if _, err := source.Token(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if calls != 1 {
				t.Errorf("expected 1 renewal, got %d", calls)
			}
		})

		t.Run("Propagates Renewal Failure", func(t *testing.T) {
			source := &reuseSource{
				renew: func(ctx context.Context, prev *Token) (*Token, error) {
					return nil, ErrRefresh
				},
			}
			if _, err := source.Token(context.Background()); !errors.Is(err, ErrRefresh) {
				t.Errorf("expected ErrRefresh, got %v", err)
			}
		})

		t.Run("Concurrent Callers Trigger One Renewal", func(t *testing.T) {
			var calls atomic.Int32
			source := &reuseSource{
				renew: func(ctx context.Context, prev *Token) (*Token, error) {
					calls.Add(1)
					return &Token{AccessToken: "shared", ExpiresAt: base.Add(time.Hour)}, nil
				},
			}

			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					tok, err := source.Token(context.Background())
					if err != nil {
						t.Errorf("expected no error, got %v", err)
						return
					}
					if tok.AccessToken != "shared" {
						t.Errorf("unexpected token: %s", tok.AccessToken)
					}
				}()
			}
			wg.Wait()

			if got := calls.Load(); got != 1 {
				t.Errorf("expected 1 renewal, got %d", got)
			}
		})
	})

	t.Run("GenerateState", func(t *testing.T) {
		a, b := GenerateState(), GenerateState()
		if a == "" || b == "" {
			t.Fatal("expected non-empty state")
		}
		if a == b {
			t.Error("expected distinct state values")
		}
	})
}
