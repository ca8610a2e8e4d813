package api

import (
	"context"
	"strings"

	"github.com/desertthunder/spx/models"
)

// SearchOpts scope and page a catalog search.
type SearchOpts struct {
	Limit  models.Optional[int]
	Offset models.Optional[int]
	Market models.Optional[string]
	// IncludeExternal widens results to externally hosted audio when set to
	// "audio".
	IncludeExternal models.Optional[string]
}

// Search queries the catalog for the given types. The result carries one
// page per requested type; unrequested types stay unset.
func (c *Client) Search(ctx context.Context, query string, types []models.SearchType, opts SearchOpts) (*models.SearchResult, error) {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	q := newParams()
	q.str("q", query)
	q.str("type", strings.Join(names, ","))
	q.optInt("limit", opts.Limit)
	q.optInt("offset", opts.Offset)
	q.optStr("market", opts.Market)
	q.optStr("include_external", opts.IncludeExternal)
	return get[models.SearchResult](ctx, c, "/search", q.Values)
}

// GetAvailableMarkets lists the country codes the catalog is available in.
func (c *Client) GetAvailableMarkets(ctx context.Context) ([]string, error) {
	resp, err := get[struct {
		Markets []string `json:"markets"`
	}](ctx, c, "/markets", nil)
	if err != nil {
		return nil, err
	}
	return resp.Markets, nil
}
