package models

import "time"

// ResumePoint is the user's most recent position in an episode.
type ResumePoint struct {
	FullyPlayed      bool `json:"fully_played"`
	ResumePositionMS int  `json:"resume_position_ms"`
}

// Episode is a podcast episode. It appears in playlists, queues and playback
// state alongside tracks.
type Episode struct {
	Description          string                 `json:"description"`
	HTMLDescription      string                 `json:"html_description"`
	DurationMS           int                    `json:"duration_ms"`
	Explicit             bool                   `json:"explicit"`
	ExternalURLs         ExternalURLs           `json:"external_urls"`
	Href                 string                 `json:"href"`
	ID                   string                 `json:"id"`
	Images               []Image                `json:"images"`
	IsExternallyHosted   bool                   `json:"is_externally_hosted"`
	IsPlayable           bool                   `json:"is_playable"`
	Languages            []string               `json:"languages"`
	Name                 string                 `json:"name"`
	ReleaseDate          ReleaseDate            `json:"release_date"`
	ReleaseDatePrecision ReleaseDatePrecision   `json:"release_date_precision"`
	ResumePoint          Optional[ResumePoint]  `json:"resume_point,omitzero"`
	Restrictions         Optional[Restrictions] `json:"restrictions,omitzero"`
	Type                 string                 `json:"type"`
	URI                  string                 `json:"uri"`
}

// Duration returns the episode length.
func (e Episode) Duration() time.Duration {
	return time.Duration(e.DurationMS) * time.Millisecond
}
