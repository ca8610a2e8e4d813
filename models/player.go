package models

import "time"

// Device is a playback device. The ID is not guaranteed stable and may be
// null for restricted devices.
type Device struct {
	ID               *string `json:"id"`
	IsActive         bool    `json:"is_active"`
	IsPrivateSession bool    `json:"is_private_session"`
	IsRestricted     bool    `json:"is_restricted"`
	Name             string  `json:"name"`
	Type             string  `json:"type"` // "computer", "smartphone", "speaker", ...
	VolumePercent    *int    `json:"volume_percent"`
	SupportsVolume   bool    `json:"supports_volume"`
}

// Context is the entity playback was started from: an album, artist, playlist
// or show.
type Context struct {
	Type         ContextType  `json:"type"`
	Href         string       `json:"href"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Actions flags which playback controls are available in the current state.
type Actions struct {
	InterruptingPlayback  Optional[bool] `json:"interrupting_playback,omitzero"`
	Pausing               Optional[bool] `json:"pausing,omitzero"`
	Resuming              Optional[bool] `json:"resuming,omitzero"`
	Seeking               Optional[bool] `json:"seeking,omitzero"`
	SkippingNext          Optional[bool] `json:"skipping_next,omitzero"`
	SkippingPrev          Optional[bool] `json:"skipping_prev,omitzero"`
	TogglingRepeatContext Optional[bool] `json:"toggling_repeat_context,omitzero"`
	TogglingShuffle       Optional[bool] `json:"toggling_shuffle,omitzero"`
	TogglingRepeatTrack   Optional[bool] `json:"toggling_repeat_track,omitzero"`
	TransferringPlayback  Optional[bool] `json:"transferring_playback,omitzero"`
}

// CurrentlyPlaying is the user's currently playing item.
type CurrentlyPlaying struct {
	Context              *Context     `json:"context"`
	Timestamp            int64        `json:"timestamp"` // unix milliseconds
	ProgressMS           *int         `json:"progress_ms"`
	IsPlaying            bool         `json:"is_playing"`
	Item                 PlayableItem `json:"item"`
	CurrentlyPlayingType PlayingType  `json:"currently_playing_type"`
	Actions              Actions      `json:"actions"`
}

// Time returns when the playback state last changed.
func (c CurrentlyPlaying) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// Progress returns the progress into the current item, or false when nothing
// is playing.
func (c CurrentlyPlaying) Progress() (time.Duration, bool) {
	if c.ProgressMS == nil {
		return 0, false
	}
	return time.Duration(*c.ProgressMS) * time.Millisecond, true
}

// Player is the user's full playback state.
type Player struct {
	CurrentlyPlaying
	Device       Device      `json:"device"`
	RepeatState  RepeatState `json:"repeat_state"`
	ShuffleState bool        `json:"shuffle_state"`
}

// PlayHistory is one entry of the user's play history.
type PlayHistory struct {
	Track    Track     `json:"track"`
	PlayedAt time.Time `json:"played_at"`
	Context  *Context  `json:"context"`
}

// Queue is the user's playback queue.
type Queue struct {
	CurrentlyPlaying PlayableItem   `json:"currently_playing"`
	Queue            []PlayableItem `json:"queue"`
}
