package auth

import (
	"strings"
	"testing"
)

func TestPKCEHelpers(t *testing.T) {
	t.Run("GenerateVerifier", func(t *testing.T) {
		t.Run("Valid Lengths", func(t *testing.T) {
			for _, n := range []int{43, 64, 128} {
				v, err := GenerateVerifier(n)
				if err != nil {
					t.Fatalf("expected no error for length %d, got %v", n, err)
				}
				if len(v) != n {
					t.Errorf("expected length %d, got %d", n, len(v))
				}
				for _, r := range v {
					if !strings.ContainsRune(verifierCharset, r) {
						t.Errorf("verifier contains invalid rune %q", r)
					}
				}
			}
		})

		t.Run("Out Of Range", func(t *testing.T) {
			if _, err := GenerateVerifier(42); err == nil {
				t.Error("expected error for length 42")
			}
			if _, err := GenerateVerifier(129); err == nil {
				t.Error("expected error for length 129")
			}
		})

		t.Run("Distinct", func(t *testing.T) {
			a, err := GenerateVerifier(64)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			b, err := GenerateVerifier(64)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if a == b {
				t.Error("expected two generated verifiers to differ")
			}
		})
	})

	t.Run("Challenge", func(t *testing.T) {
		// RFC 7636 appendix B test vector.
		verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
		want := "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
		if got := Challenge(verifier); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
