package models

import "time"

// LinkedTrack identifies the originally requested track when track relinking
// is applied.
type LinkedTrack struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	URI          string       `json:"uri"`
}

// SimpleTrack is a simplified track, as embedded in albums.
type SimpleTrack struct {
	Artists          []SimpleArtist         `json:"artists"`
	AvailableMarkets Optional[[]string]     `json:"available_markets,omitzero"`
	DiscNumber       int                    `json:"disc_number"`
	DurationMS       int                    `json:"duration_ms"`
	Explicit         bool                   `json:"explicit"`
	ExternalURLs     ExternalURLs           `json:"external_urls"`
	Href             string                 `json:"href"`
	ID               string                 `json:"id"`
	IsPlayable       Optional[bool]         `json:"is_playable,omitzero"`
	LinkedFrom       Optional[LinkedTrack]  `json:"linked_from,omitzero"`
	Restrictions     Optional[Restrictions] `json:"restrictions,omitzero"`
	Name             string                 `json:"name"`
	PreviewURL       *string                `json:"preview_url"`
	TrackNumber      int                    `json:"track_number"`
	Type             string                 `json:"type"`
	IsLocal          bool                   `json:"is_local"`
	URI              string                 `json:"uri"`
}

// Duration returns the track length.
func (t SimpleTrack) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// Track is a full track.
type Track struct {
	SimpleTrack
	Album       SimpleAlbum `json:"album"`
	ExternalIDs ExternalIDs `json:"external_ids"`
	Popularity  int         `json:"popularity"`
}

// SavedTrack is a track saved to the user's library, with save metadata.
type SavedTrack struct {
	AddedAt time.Time `json:"added_at"`
	Track   Track     `json:"track"`
}

// Recommendations is a set of recommended tracks with the seeds that produced
// them.
type Recommendations struct {
	Seeds  []RecommendationSeed `json:"seeds"`
	Tracks []Track              `json:"tracks"`
}

// RecommendationSeed describes one seed used to generate recommendations.
type RecommendationSeed struct {
	AfterFilteringSize int      `json:"afterFilteringSize"`
	AfterRelinkingSize int      `json:"afterRelinkingSize"`
	Href               *string  `json:"href"`
	ID                 string   `json:"id"`
	InitialPoolSize    int      `json:"initialPoolSize"`
	Type               SeedType `json:"type"`
}
