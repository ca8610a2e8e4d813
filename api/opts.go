package api

import "github.com/desertthunder/spx/models"

// MarketOpts scopes a lookup to a market. Leave Market unset for the
// token's country.
type MarketOpts struct {
	Market models.Optional[string]
}

func (o MarketOpts) query() params {
	q := newParams()
	q.optStr("market", o.Market)
	return q
}

// ListOpts are the shared paging filters of listing endpoints.
type ListOpts struct {
	Limit  models.Optional[int]
	Offset models.Optional[int]
	Market models.Optional[string]
}

func (o ListOpts) query() params {
	q := newParams()
	q.optInt("limit", o.Limit)
	q.optInt("offset", o.Offset)
	q.optStr("market", o.Market)
	return q
}

// CursorOpts are the paging filters of cursor-based listing endpoints.
type CursorOpts struct {
	Limit  models.Optional[int]
	After  models.Optional[string]
	Before models.Optional[string]
}

func (o CursorOpts) query() params {
	q := newParams()
	q.optInt("limit", o.Limit)
	q.optStr("after", o.After)
	q.optStr("before", o.Before)
	return q
}
