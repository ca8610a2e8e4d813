package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/desertthunder/spx/models"
)

// ArtistAlbumOpts filter an artist's discography.
type ArtistAlbumOpts struct {
	// Groups restricts results to the given relationship groups, e.g.
	// [models.AlbumGroupAlbum, models.AlbumGroupSingle]. Empty means all.
	Groups []models.AlbumGroup
	Limit  models.Optional[int]
	Offset models.Optional[int]
	Market models.Optional[string]
}

func (o ArtistAlbumOpts) query() params {
	q := newParams()
	if len(o.Groups) > 0 {
		groups := make([]string, len(o.Groups))
		for i, g := range o.Groups {
			groups[i] = string(g)
		}
		q.str("include_groups", strings.Join(groups, ","))
	}
	q.optInt("limit", o.Limit)
	q.optInt("offset", o.Offset)
	q.optStr("market", o.Market)
	return q
}

// GetArtist fetches a single artist.
func (c *Client) GetArtist(ctx context.Context, id string) (*models.Artist, error) {
	return get[models.Artist](ctx, c, "/artists/"+url.PathEscape(id), nil)
}

// GetArtists fetches several artists at once.
func (c *Client) GetArtists(ctx context.Context, ids []string) ([]models.Artist, error) {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	resp, err := get[struct {
		Artists []models.Artist `json:"artists"`
	}](ctx, c, "/artists", q.Values)
	if err != nil {
		return nil, err
	}
	return resp.Artists, nil
}

// GetArtistAlbums lists an artist's albums.
func (c *Client) GetArtistAlbums(ctx context.Context, id string, opts ArtistAlbumOpts) (*models.Page[models.ArtistAlbum], error) {
	return get[models.Page[models.ArtistAlbum]](ctx, c, "/artists/"+url.PathEscape(id)+"/albums", opts.query().Values)
}

// GetArtistTopTracks fetches an artist's top tracks for a market.
func (c *Client) GetArtistTopTracks(ctx context.Context, id string, opts MarketOpts) ([]models.Track, error) {
	resp, err := get[struct {
		Tracks []models.Track `json:"tracks"`
	}](ctx, c, "/artists/"+url.PathEscape(id)+"/top-tracks", opts.query().Values)
	if err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// GetRelatedArtists fetches artists similar to the given one.
func (c *Client) GetRelatedArtists(ctx context.Context, id string) ([]models.Artist, error) {
	resp, err := get[struct {
		Artists []models.Artist `json:"artists"`
	}](ctx, c, "/artists/"+url.PathEscape(id)+"/related-artists", nil)
	if err != nil {
		return nil, err
	}
	return resp.Artists, nil
}
