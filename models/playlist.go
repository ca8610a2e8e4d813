package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// PlaylistTracks links to a playlist's full track listing without embedding it.
type PlaylistTracks struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// SimplePlaylist is a simplified playlist, as returned by listing endpoints.
type SimplePlaylist struct {
	Collaborative bool           `json:"collaborative"`
	Description   *string        `json:"description"`
	ExternalURLs  ExternalURLs   `json:"external_urls"`
	Href          string         `json:"href"`
	ID            string         `json:"id"`
	Images        []Image        `json:"images"`
	Name          string         `json:"name"`
	Owner         User           `json:"owner"`
	Public        *bool          `json:"public"`
	SnapshotID    string         `json:"snapshot_id"`
	Tracks        PlaylistTracks `json:"tracks"`
	URI           string         `json:"uri"`
}

// Playlist is a full playlist with its items inlined.
type Playlist struct {
	Collaborative bool               `json:"collaborative"`
	Description   *string            `json:"description"`
	ExternalURLs  ExternalURLs       `json:"external_urls"`
	Followers     Followers          `json:"followers"`
	Href          string             `json:"href"`
	ID            string             `json:"id"`
	Images        []Image            `json:"images"`
	Name          string             `json:"name"`
	Owner         User               `json:"owner"`
	Public        *bool              `json:"public"`
	SnapshotID    string             `json:"snapshot_id"`
	Tracks        Page[PlaylistItem] `json:"tracks"`
	URI           string             `json:"uri"`
}

// PlaylistItem is one entry of a playlist with its add metadata. Very old
// playlists may carry null add metadata, and the item itself may be null when
// a track is no longer available.
type PlaylistItem struct {
	AddedAt *time.Time   `json:"added_at"`
	AddedBy *SimpleUser  `json:"added_by"`
	IsLocal bool         `json:"is_local"`
	Item    PlayableItem `json:"track"`
}

// PlayableItem is a playlist, queue or playback entry that is either a track
// or an episode, discriminated by the remote "type" field. At most one of the
// two fields is non-nil; both are nil when the remote item was null.
type PlayableItem struct {
	Track   *Track
	Episode *Episode
}

// IsZero reports whether the item was null or absent.
func (p PlayableItem) IsZero() bool { return p.Track == nil && p.Episode == nil }

func (p *PlayableItem) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = PlayableItem{}
		return nil
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case "track":
		t := new(Track)
		if err := json.Unmarshal(data, t); err != nil {
			return err
		}
		*p = PlayableItem{Track: t}
	case "episode":
		e := new(Episode)
		if err := json.Unmarshal(data, e); err != nil {
			return err
		}
		*p = PlayableItem{Episode: e}
	default:
		return fmt.Errorf("unknown playable item type %q", probe.Type)
	}
	return nil
}

func (p PlayableItem) MarshalJSON() ([]byte, error) {
	switch {
	case p.Track != nil:
		return json.Marshal(p.Track)
	case p.Episode != nil:
		return json.Marshal(p.Episode)
	}
	return []byte("null"), nil
}

// FeaturedPlaylists is a curated playlist set with its localized message.
type FeaturedPlaylists struct {
	Message   string               `json:"message"`
	Playlists Page[SimplePlaylist] `json:"playlists"`
}
