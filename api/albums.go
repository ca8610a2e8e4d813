package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/spx/models"
)

// GetAlbum fetches a single album from the catalog.
func (c *Client) GetAlbum(ctx context.Context, id string, opts MarketOpts) (*models.Album, error) {
	return get[models.Album](ctx, c, "/albums/"+url.PathEscape(id), opts.query().Values)
}

// GetAlbums fetches several albums at once. The result preserves the order
// of ids.
func (c *Client) GetAlbums(ctx context.Context, ids []string, opts MarketOpts) ([]models.Album, error) {
	q := opts.query()
	q.str("ids", strings.Join(ids, ","))
	resp, err := get[struct {
		Albums []models.Album `json:"albums"`
	}](ctx, c, "/albums", q.Values)
	if err != nil {
		return nil, err
	}
	return resp.Albums, nil
}

// GetAlbumTracks lists the tracks of an album.
func (c *Client) GetAlbumTracks(ctx context.Context, id string, opts ListOpts) (*models.Page[models.SimpleTrack], error) {
	return get[models.Page[models.SimpleTrack]](ctx, c, "/albums/"+url.PathEscape(id)+"/tracks", opts.query().Values)
}

// GetSavedAlbums lists the albums saved in the current user's library.
// Requires the user-library-read scope.
func (c *Client) GetSavedAlbums(ctx context.Context, opts ListOpts) (*models.Page[models.SavedAlbum], error) {
	return get[models.Page[models.SavedAlbum]](ctx, c, "/me/albums", opts.query().Values)
}

// SaveAlbums adds albums to the current user's library.
func (c *Client) SaveAlbums(ctx context.Context, ids []string) error {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	return c.put(ctx, "/me/albums", q.Values, nil)
}

// RemoveSavedAlbums removes albums from the current user's library.
func (c *Client) RemoveSavedAlbums(ctx context.Context, ids []string) error {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	return c.del(ctx, "/me/albums", q.Values, nil)
}

// CheckSavedAlbums reports, per id, whether the album is in the current
// user's library.
func (c *Client) CheckSavedAlbums(ctx context.Context, ids []string) ([]bool, error) {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	data, err := c.request(ctx, http.MethodGet, "/me/albums/contains", q.Values, nil)
	if err != nil {
		return nil, err
	}
	saved, err := decode[[]bool](data)
	if err != nil {
		return nil, err
	}
	return *saved, nil
}

// GetNewReleases lists albums recently added to the catalog.
func (c *Client) GetNewReleases(ctx context.Context, opts ListOpts) (*models.Page[models.SimpleAlbum], error) {
	resp, err := get[struct {
		Albums models.Page[models.SimpleAlbum] `json:"albums"`
	}](ctx, c, "/browse/new-releases", opts.query().Values)
	if err != nil {
		return nil, err
	}
	return &resp.Albums, nil
}
