package api

import (
	"context"
	"net/url"

	"github.com/desertthunder/spx/models"
)

// TimeRange selects the window a top-items ranking is computed over.
type TimeRange string

const (
	TimeRangeShort  TimeRange = "short_term"  // ~4 weeks
	TimeRangeMedium TimeRange = "medium_term" // ~6 months
	TimeRangeLong   TimeRange = "long_term"   // years
)

// TopItemsOpts filter the current user's top artists or tracks.
type TopItemsOpts struct {
	TimeRange TimeRange
	Limit     models.Optional[int]
	Offset    models.Optional[int]
}

func (o TopItemsOpts) query() params {
	q := newParams()
	if o.TimeRange != "" {
		q.str("time_range", string(o.TimeRange))
	}
	q.optInt("limit", o.Limit)
	q.optInt("offset", o.Offset)
	return q
}

// GetCurrentUser fetches the profile of the token's owner. Email and
// country require the user-read-email and user-read-private scopes; without
// them the fields stay unset.
func (c *Client) GetCurrentUser(ctx context.Context) (*models.OwnUser, error) {
	return get[models.OwnUser](ctx, c, "/me", nil)
}

// GetUser fetches another user's public profile.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	return get[models.User](ctx, c, "/users/"+url.PathEscape(id), nil)
}

// GetTopArtists ranks the current user's listened-to artists. Requires the
// user-top-read scope.
func (c *Client) GetTopArtists(ctx context.Context, opts TopItemsOpts) (*models.Page[models.Artist], error) {
	return get[models.Page[models.Artist]](ctx, c, "/me/top/artists", opts.query().Values)
}

// GetTopTracks ranks the current user's listened-to tracks. Requires the
// user-top-read scope.
func (c *Client) GetTopTracks(ctx context.Context, opts TopItemsOpts) (*models.Page[models.Track], error) {
	return get[models.Page[models.Track]](ctx, c, "/me/top/tracks", opts.query().Values)
}

// GetFollowedArtists lists the artists the current user follows. Requires
// the user-follow-read scope.
func (c *Client) GetFollowedArtists(ctx context.Context, opts CursorOpts) (*models.CursorPage[models.Artist], error) {
	q := opts.query()
	q.str("type", "artist")
	resp, err := get[struct {
		Artists models.CursorPage[models.Artist] `json:"artists"`
	}](ctx, c, "/me/following", q.Values)
	if err != nil {
		return nil, err
	}
	return &resp.Artists, nil
}
