package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/spx/models"
)

// RecommendationOpts seed the recommendation engine. At least one seed list
// must be non-empty; the service accepts up to five seeds in total.
type RecommendationOpts struct {
	SeedArtists []string
	SeedTracks  []string
	SeedGenres  []string
	Limit       models.Optional[int]
	Market      models.Optional[string]
}

func (o RecommendationOpts) query() params {
	q := newParams()
	if len(o.SeedArtists) > 0 {
		q.str("seed_artists", strings.Join(o.SeedArtists, ","))
	}
	if len(o.SeedTracks) > 0 {
		q.str("seed_tracks", strings.Join(o.SeedTracks, ","))
	}
	if len(o.SeedGenres) > 0 {
		q.str("seed_genres", strings.Join(o.SeedGenres, ","))
	}
	q.optInt("limit", o.Limit)
	q.optStr("market", o.Market)
	return q
}

// GetTrack fetches a single track.
func (c *Client) GetTrack(ctx context.Context, id string, opts MarketOpts) (*models.Track, error) {
	return get[models.Track](ctx, c, "/tracks/"+url.PathEscape(id), opts.query().Values)
}

// GetTracks fetches several tracks at once.
func (c *Client) GetTracks(ctx context.Context, ids []string, opts MarketOpts) ([]models.Track, error) {
	q := opts.query()
	q.str("ids", strings.Join(ids, ","))
	resp, err := get[struct {
		Tracks []models.Track `json:"tracks"`
	}](ctx, c, "/tracks", q.Values)
	if err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// GetSavedTracks lists the tracks saved in the current user's library.
// Requires the user-library-read scope.
func (c *Client) GetSavedTracks(ctx context.Context, opts ListOpts) (*models.Page[models.SavedTrack], error) {
	return get[models.Page[models.SavedTrack]](ctx, c, "/me/tracks", opts.query().Values)
}

// SaveTracks adds tracks to the current user's library.
func (c *Client) SaveTracks(ctx context.Context, ids []string) error {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	return c.put(ctx, "/me/tracks", q.Values, nil)
}

// RemoveSavedTracks removes tracks from the current user's library.
func (c *Client) RemoveSavedTracks(ctx context.Context, ids []string) error {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	return c.del(ctx, "/me/tracks", q.Values, nil)
}

// CheckSavedTracks reports, per id, whether the track is in the current
// user's library.
func (c *Client) CheckSavedTracks(ctx context.Context, ids []string) ([]bool, error) {
	q := newParams()
	q.str("ids", strings.Join(ids, ","))
	data, err := c.request(ctx, http.MethodGet, "/me/tracks/contains", q.Values, nil)
	if err != nil {
		return nil, err
	}
	saved, err := decode[[]bool](data)
	if err != nil {
		return nil, err
	}
	return *saved, nil
}

// GetRecommendations fetches tracks matching the given seeds.
func (c *Client) GetRecommendations(ctx context.Context, opts RecommendationOpts) (*models.Recommendations, error) {
	return get[models.Recommendations](ctx, c, "/recommendations", opts.query().Values)
}
