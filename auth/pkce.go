package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const verifierCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_.-~"

// GenerateVerifier returns a random PKCE code verifier of length n, drawn
// from the RFC 7636 unreserved character set. n must be between 43 and 128.
func GenerateVerifier(n int) (string, error) {
	if n < 43 || n > 128 {
		return "", fmt.Errorf("verifier length must be between 43 and 128, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verifier: %w", err)
	}
	for i, b := range buf {
		buf[i] = verifierCharset[int(b)%len(verifierCharset)]
	}
	return string(buf), nil
}

// Challenge derives the S256 code challenge for a verifier: the URL-safe
// base64 encoding of its SHA-256 digest, without padding.
func Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
