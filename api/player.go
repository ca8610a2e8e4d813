package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/desertthunder/spx/models"
)

// PlayOpts describe what to start playing. Zero value resumes the current
// context on the active device.
type PlayOpts struct {
	// DeviceID targets a specific device; unset means the active one.
	DeviceID models.Optional[string] `json:"-"`
	// ContextURI plays an album, artist or playlist context.
	ContextURI models.Optional[string] `json:"context_uri,omitzero"`
	// URIs plays an ad-hoc list of tracks instead of a context.
	URIs       []string             `json:"uris,omitempty"`
	PositionMS models.Optional[int] `json:"position_ms,omitzero"`
}

func deviceQuery(deviceID models.Optional[string]) params {
	q := newParams()
	q.optStr("device_id", deviceID)
	return q
}

// GetPlaybackState fetches the full playback state, device included.
// Returns (nil, nil) when nothing is playing on any device.
func (c *Client) GetPlaybackState(ctx context.Context, opts MarketOpts) (*models.Player, error) {
	q := opts.query()
	q.str("additional_types", "track,episode")
	data, err := c.request(ctx, http.MethodGet, "/me/player", q.Values, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decode[models.Player](data)
}

// TransferPlayback moves playback to another device. When play is true the
// target starts playing immediately.
func (c *Client) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	body := struct {
		DeviceIDs []string `json:"device_ids"`
		Play      bool     `json:"play"`
	}{DeviceIDs: []string{deviceID}, Play: play}
	return c.put(ctx, "/me/player", nil, body)
}

// GetDevices lists the user's available playback devices.
func (c *Client) GetDevices(ctx context.Context) ([]models.Device, error) {
	resp, err := get[struct {
		Devices []models.Device `json:"devices"`
	}](ctx, c, "/me/player/devices", nil)
	if err != nil {
		return nil, err
	}
	return resp.Devices, nil
}

// GetCurrentlyPlaying fetches the item playing right now. Returns (nil, nil)
// when nothing is playing.
func (c *Client) GetCurrentlyPlaying(ctx context.Context, opts MarketOpts) (*models.CurrentlyPlaying, error) {
	q := opts.query()
	q.str("additional_types", "track,episode")
	data, err := c.request(ctx, http.MethodGet, "/me/player/currently-playing", q.Values, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decode[models.CurrentlyPlaying](data)
}

// StartPlayback starts or resumes playback.
func (c *Client) StartPlayback(ctx context.Context, opts PlayOpts) error {
	return c.put(ctx, "/me/player/play", deviceQuery(opts.DeviceID).Values, opts)
}

// PausePlayback pauses playback.
func (c *Client) PausePlayback(ctx context.Context, deviceID models.Optional[string]) error {
	return c.put(ctx, "/me/player/pause", deviceQuery(deviceID).Values, nil)
}

// SkipToNext skips to the next item in the queue.
func (c *Client) SkipToNext(ctx context.Context, deviceID models.Optional[string]) error {
	_, err := c.request(ctx, http.MethodPost, "/me/player/next", deviceQuery(deviceID).Values, nil)
	return err
}

// SkipToPrevious skips to the previous item.
func (c *Client) SkipToPrevious(ctx context.Context, deviceID models.Optional[string]) error {
	_, err := c.request(ctx, http.MethodPost, "/me/player/previous", deviceQuery(deviceID).Values, nil)
	return err
}

// SeekToPosition seeks within the current item.
func (c *Client) SeekToPosition(ctx context.Context, positionMS int, deviceID models.Optional[string]) error {
	q := deviceQuery(deviceID)
	q.str("position_ms", strconv.Itoa(positionMS))
	return c.put(ctx, "/me/player/seek", q.Values, nil)
}

// SetRepeatMode sets the repeat mode for playback.
func (c *Client) SetRepeatMode(ctx context.Context, state models.RepeatState, deviceID models.Optional[string]) error {
	q := deviceQuery(deviceID)
	q.str("state", string(state))
	return c.put(ctx, "/me/player/repeat", q.Values, nil)
}

// SetVolume sets the playback volume; percent is clamped to 0..100 by the
// service.
func (c *Client) SetVolume(ctx context.Context, percent int, deviceID models.Optional[string]) error {
	q := deviceQuery(deviceID)
	q.str("volume_percent", strconv.Itoa(percent))
	return c.put(ctx, "/me/player/volume", q.Values, nil)
}

// SetShuffle toggles shuffle.
func (c *Client) SetShuffle(ctx context.Context, on bool, deviceID models.Optional[string]) error {
	q := deviceQuery(deviceID)
	q.str("state", strconv.FormatBool(on))
	return c.put(ctx, "/me/player/shuffle", q.Values, nil)
}

// GetRecentlyPlayed lists recently played tracks as a cursor page. After and
// Before are unix millisecond timestamps and are mutually exclusive.
func (c *Client) GetRecentlyPlayed(ctx context.Context, opts CursorOpts) (*models.CursorPage[models.PlayHistory], error) {
	return get[models.CursorPage[models.PlayHistory]](ctx, c, "/me/player/recently-played", opts.query().Values)
}

// GetQueue fetches the current item plus the upcoming queue.
func (c *Client) GetQueue(ctx context.Context) (*models.Queue, error) {
	return get[models.Queue](ctx, c, "/me/player/queue", nil)
}

// AddToQueue appends an item to the playback queue by URI.
func (c *Client) AddToQueue(ctx context.Context, uri string, deviceID models.Optional[string]) error {
	q := deviceQuery(deviceID)
	q.str("uri", uri)
	_, err := c.request(ctx, http.MethodPost, "/me/player/queue", q.Values, nil)
	return err
}
