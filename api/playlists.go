package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/spx/models"
)

// PlaylistDetails carries the editable fields of a playlist. Unset fields
// are left out of the request entirely, so the service keeps their current
// values; a null Description clears it.
type PlaylistDetails struct {
	Name          models.Optional[string] `json:"name,omitzero"`
	Public        models.Optional[bool]   `json:"public,omitzero"`
	Collaborative models.Optional[bool]   `json:"collaborative,omitzero"`
	Description   models.Optional[string] `json:"description,omitzero"`
}

// ReorderOpts describe a range move inside a playlist. RangeLength defaults
// to 1 on the service side.
type ReorderOpts struct {
	RangeStart   int                     `json:"range_start"`
	InsertBefore int                     `json:"insert_before"`
	RangeLength  models.Optional[int]    `json:"range_length,omitzero"`
	SnapshotID   models.Optional[string] `json:"snapshot_id,omitzero"`
}

type snapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// GetPlaylist fetches a playlist with its first page of items.
func (c *Client) GetPlaylist(ctx context.Context, id string, opts MarketOpts) (*models.Playlist, error) {
	return get[models.Playlist](ctx, c, "/playlists/"+url.PathEscape(id), opts.query().Values)
}

// ChangePlaylistDetails updates a playlist's editable fields. Requires the
// playlist-modify-public or playlist-modify-private scope.
func (c *Client) ChangePlaylistDetails(ctx context.Context, id string, details PlaylistDetails) error {
	return c.put(ctx, "/playlists/"+url.PathEscape(id), nil, details)
}

// GetPlaylistItems lists a playlist's items. Each item may hold a track or
// an episode.
func (c *Client) GetPlaylistItems(ctx context.Context, id string, opts ListOpts) (*models.Page[models.PlaylistItem], error) {
	return get[models.Page[models.PlaylistItem]](ctx, c, "/playlists/"+url.PathEscape(id)+"/tracks", opts.query().Values)
}

// AddPlaylistItems appends items by URI, or inserts them at position when it
// is set. Returns the new snapshot id.
func (c *Client) AddPlaylistItems(ctx context.Context, id string, uris []string, position models.Optional[int]) (string, error) {
	body := struct {
		URIs     []string             `json:"uris"`
		Position models.Optional[int] `json:"position,omitzero"`
	}{URIs: uris, Position: position}
	resp, err := post[snapshotResponse](ctx, c, "/playlists/"+url.PathEscape(id)+"/tracks", nil, body)
	if err != nil {
		return "", err
	}
	return resp.SnapshotID, nil
}

// RemovePlaylistItems removes every occurrence of the given URIs. Passing
// the snapshot id pins the removal to that version of the playlist. Returns
// the new snapshot id.
func (c *Client) RemovePlaylistItems(ctx context.Context, id string, uris []string, snapshotID models.Optional[string]) (string, error) {
	type uriRef struct {
		URI string `json:"uri"`
	}
	refs := make([]uriRef, len(uris))
	for i, u := range uris {
		refs[i] = uriRef{URI: u}
	}
	body := struct {
		Tracks     []uriRef                `json:"tracks"`
		SnapshotID models.Optional[string] `json:"snapshot_id,omitzero"`
	}{Tracks: refs, SnapshotID: snapshotID}
	data, err := c.request(ctx, http.MethodDelete, "/playlists/"+url.PathEscape(id)+"/tracks", nil, body)
	if err != nil {
		return "", err
	}
	resp, err := decode[snapshotResponse](data)
	if err != nil {
		return "", err
	}
	return resp.SnapshotID, nil
}

// UpdatePlaylistItems moves a range of items to a new position. Returns the
// new snapshot id.
func (c *Client) UpdatePlaylistItems(ctx context.Context, id string, opts ReorderOpts) (string, error) {
	data, err := c.request(ctx, http.MethodPut, "/playlists/"+url.PathEscape(id)+"/tracks", nil, opts)
	if err != nil {
		return "", err
	}
	resp, err := decode[snapshotResponse](data)
	if err != nil {
		return "", err
	}
	return resp.SnapshotID, nil
}

// GetMyPlaylists lists the current user's playlists. Requires the
// playlist-read-private scope to include private ones.
func (c *Client) GetMyPlaylists(ctx context.Context, opts ListOpts) (*models.Page[models.SimplePlaylist], error) {
	return get[models.Page[models.SimplePlaylist]](ctx, c, "/me/playlists", opts.query().Values)
}

// GetUserPlaylists lists another user's public playlists.
func (c *Client) GetUserPlaylists(ctx context.Context, userID string, opts ListOpts) (*models.Page[models.SimplePlaylist], error) {
	return get[models.Page[models.SimplePlaylist]](ctx, c, "/users/"+url.PathEscape(userID)+"/playlists", opts.query().Values)
}

// CreatePlaylist creates an empty playlist owned by the given user. Name
// must be set; the other fields default service-side.
func (c *Client) CreatePlaylist(ctx context.Context, userID string, details PlaylistDetails) (*models.Playlist, error) {
	return post[models.Playlist](ctx, c, "/users/"+url.PathEscape(userID)+"/playlists", nil, details)
}

// GetPlaylistCoverImage fetches a playlist's cover in the available sizes.
func (c *Client) GetPlaylistCoverImage(ctx context.Context, id string) ([]models.Image, error) {
	data, err := c.request(ctx, http.MethodGet, "/playlists/"+url.PathEscape(id)+"/images", nil, nil)
	if err != nil {
		return nil, err
	}
	images, err := decode[[]models.Image](data)
	if err != nil {
		return nil, err
	}
	return *images, nil
}

// SetPlaylistCoverImage replaces a playlist's cover with the given JPEG.
// The image is sent base64-encoded; the service caps it at 256 KB encoded.
func (c *Client) SetPlaylistCoverImage(ctx context.Context, id string, jpeg []byte) error {
	encoded := base64.StdEncoding.EncodeToString(jpeg)
	_, err := c.do(ctx, http.MethodPut, c.baseURL+"/playlists/"+url.PathEscape(id)+"/images", strings.NewReader(encoded), "image/jpeg")
	return err
}

// FollowPlaylist adds the playlist to the current user's library.
func (c *Client) FollowPlaylist(ctx context.Context, id string, public bool) error {
	body := struct {
		Public bool `json:"public"`
	}{Public: public}
	return c.put(ctx, "/playlists/"+url.PathEscape(id)+"/followers", nil, body)
}

// UnfollowPlaylist removes the playlist from the current user's library.
func (c *Client) UnfollowPlaylist(ctx context.Context, id string) error {
	return c.del(ctx, "/playlists/"+url.PathEscape(id)+"/followers", nil, nil)
}

// GetFeaturedPlaylists lists the playlists featured on the service's
// browse surface.
func (c *Client) GetFeaturedPlaylists(ctx context.Context, opts ListOpts) (*models.FeaturedPlaylists, error) {
	return get[models.FeaturedPlaylists](ctx, c, "/browse/featured-playlists", opts.query().Values)
}
