package models

import (
	"encoding/json"
	"testing"
)

func TestPlayableItem(t *testing.T) {
	t.Run("Decodes Track", func(t *testing.T) {
		var item PlayableItem
		payload := `{"id":"t1","name":"Song","type":"track","duration_ms":200000,"album":{"id":"a1","name":"Record","album_type":"album","release_date":"2020-03-13","release_date_precision":"day"}}`
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if item.Track == nil {
			t.Fatal("expected track to be set")
		}
		if item.Episode != nil {
			t.Error("expected episode to be nil")
		}
		if item.Track.Name != "Song" {
			t.Errorf("unexpected track name: %s", item.Track.Name)
		}
	})

	t.Run("Decodes Episode", func(t *testing.T) {
		var item PlayableItem
		payload := `{"id":"e1","name":"Pilot","type":"episode","duration_ms":1800000,"explicit":false}`
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if item.Episode == nil {
			t.Fatal("expected episode to be set")
		}
		if item.Track != nil {
			t.Error("expected track to be nil")
		}
		if item.Episode.Name != "Pilot" {
			t.Errorf("unexpected episode name: %s", item.Episode.Name)
		}
	})

	t.Run("Decodes Null", func(t *testing.T) {
		var item PlayableItem
		if err := json.Unmarshal([]byte(`null`), &item); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !item.IsZero() {
			t.Error("expected empty item for null")
		}
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		var item PlayableItem
		if err := json.Unmarshal([]byte(`{"id":"x","type":"audiobook"}`), &item); err == nil {
			t.Error("expected error for unknown item type")
		}
	})

	t.Run("Round Trips Inside A Playlist Item", func(t *testing.T) {
		payload := `{"added_at":"2023-01-15T09:00:00Z","track":{"id":"t1","name":"Song","type":"track","duration_ms":200000,"album":{"id":"a1","name":"Record","album_type":"album","release_date":"2020","release_date_precision":"year"}}}`

		var pi PlaylistItem
		if err := json.Unmarshal([]byte(payload), &pi); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pi.Item.Track == nil {
			t.Fatal("expected track item")
		}

		data, err := json.Marshal(pi)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var back PlaylistItem
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("expected marshaled item to decode again, got %v", err)
		}
		if back.Item.Track == nil || back.Item.Track.ID != "t1" {
			t.Error("expected discriminator to survive the round trip")
		}
	})
}
