package models

import (
	"encoding/json"
	"testing"
)

func TestEnums(t *testing.T) {
	t.Run("AlbumType", func(t *testing.T) {
		t.Run("Accepts Known Literals", func(t *testing.T) {
			var at AlbumType
			if err := json.Unmarshal([]byte(`"compilation"`), &at); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if at != AlbumTypeCompilation {
				t.Errorf("unexpected value: %s", at)
			}
		})

		t.Run("Normalizes Case", func(t *testing.T) {
			var at AlbumType
			if err := json.Unmarshal([]byte(`"ALBUM"`), &at); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if at != AlbumTypeAlbum {
				t.Errorf("unexpected value: %s", at)
			}
		})

		t.Run("Rejects Unknown Literals", func(t *testing.T) {
			var at AlbumType
			if err := json.Unmarshal([]byte(`"mixtape"`), &at); err == nil {
				t.Error("expected error for unknown album type")
			}
		})
	})

	t.Run("RepeatState", func(t *testing.T) {
		for _, valid := range []string{"off", "track", "context"} {
			var rs RepeatState
			if err := json.Unmarshal([]byte(`"`+valid+`"`), &rs); err != nil {
				t.Errorf("expected %q to be accepted, got %v", valid, err)
			}
		}

		var rs RepeatState
		if err := json.Unmarshal([]byte(`"shuffle"`), &rs); err == nil {
			t.Error("expected error for unknown repeat state")
		}
	})

	t.Run("PlayingType Tolerates Unknown Literals", func(t *testing.T) {
		var pt PlayingType
		if err := json.Unmarshal([]byte(`"hologram"`), &pt); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pt != PlayingUnknown {
			t.Errorf("expected unknown literal to normalize, got %s", pt)
		}

		if err := json.Unmarshal([]byte(`"episode"`), &pt); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pt != PlayingEpisode {
			t.Errorf("unexpected value: %s", pt)
		}
	})

	t.Run("RestrictionReason Tolerates Unknown Literals", func(t *testing.T) {
		var rr RestrictionReason
		if err := json.Unmarshal([]byte(`"geoblock"`), &rr); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rr != ReasonUnknown {
			t.Errorf("expected unknown literal to normalize, got %s", rr)
		}
	})

	t.Run("Scopes", func(t *testing.T) {
		t.Run("Join", func(t *testing.T) {
			got := JoinScopes([]Scope{ScopeUserLibraryRead, ScopeUserReadEmail})
			if got != "user-library-read user-read-email" {
				t.Errorf("unexpected join: %s", got)
			}
		})

		t.Run("Split", func(t *testing.T) {
			scopes := SplitScopes("user-library-read user-read-email")
			if len(scopes) != 2 {
				t.Fatalf("expected 2 scopes, got %d", len(scopes))
			}
			if scopes[1] != ScopeUserReadEmail {
				t.Errorf("unexpected scope: %s", scopes[1])
			}
		})

		t.Run("Split Empty", func(t *testing.T) {
			if scopes := SplitScopes(""); scopes != nil {
				t.Errorf("expected nil for empty input, got %v", scopes)
			}
		})
	})
}
