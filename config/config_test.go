package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[credentials]
client_id = "abc123"
client_secret = "shh"
redirect_uri = "http://localhost:9000/cb"

[client]
requests_per_second = 2.5
burst = 3
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cfg.Credentials.ClientID != "abc123" {
				t.Errorf("unexpected client_id: %s", cfg.Credentials.ClientID)
			}
			if cfg.Credentials.RedirectURI != "http://localhost:9000/cb" {
				t.Errorf("unexpected redirect_uri: %s", cfg.Credentials.RedirectURI)
			}
			if cfg.Client.RequestsPerSecond != 2.5 {
				t.Errorf("unexpected requests_per_second: %f", cfg.Client.RequestsPerSecond)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Malformed File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte("[credentials\nclient_id ="), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error for malformed TOML")
			}
		})
	})

	t.Run("Default", func(t *testing.T) {
		cfg := Default()
		if cfg.Credentials.ClientID == "" {
			t.Error("expected placeholder client_id in embedded defaults")
		}
	})

	t.Run("CreateFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected created file to load, got %v", err)
		}
		if cfg.Credentials.ClientID != "your-client-id" {
			t.Errorf("unexpected placeholder: %s", cfg.Credentials.ClientID)
		}

		if err := CreateFile(path); err == nil {
			t.Error("expected error when file already exists")
		}
	})
}
