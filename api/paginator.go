package api

import (
	"context"
	"net/http"

	"github.com/desertthunder/spx/models"
)

// Paginator walks offset-based pages by following the absolute next and
// previous links the service embeds in each page. It never fabricates URLs;
// when a link is absent the walk simply ends.
type Paginator[T any] struct {
	client *Client
	page   *models.Page[T]
}

// NewPaginator wraps an already-fetched first page.
func NewPaginator[T any](c *Client, first *models.Page[T]) *Paginator[T] {
	return &Paginator[T]{client: c, page: first}
}

// Current returns the page the paginator is positioned on.
func (p *Paginator[T]) Current() *models.Page[T] {
	return p.page
}

// Next fetches the following page, or returns (nil, nil) when there is none.
func (p *Paginator[T]) Next(ctx context.Context) (*models.Page[T], error) {
	if p.page == nil || p.page.Next == nil {
		return nil, nil
	}
	page, err := p.follow(ctx, *p.page.Next)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}

// Previous fetches the preceding page, or returns (nil, nil) when there is
// none.
func (p *Paginator[T]) Previous(ctx context.Context) (*models.Page[T], error) {
	if p.page == nil || p.page.Previous == nil {
		return nil, nil
	}
	page, err := p.follow(ctx, *p.page.Previous)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}

// All drains every remaining page, starting with the current one, and
// returns the accumulated items. A mid-walk error returns the items gathered
// so far alongside it.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	if p.page != nil {
		items = append(items, p.page.Items...)
	}
	for {
		page, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		if page == nil {
			return items, nil
		}
		items = append(items, page.Items...)
	}
}

func (p *Paginator[T]) follow(ctx context.Context, link string) (*models.Page[T], error) {
	data, err := p.client.requestURL(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Page[T]](data)
}

// CursorPaginator walks cursor-based pages. Cursor pages only move forward.
type CursorPaginator[T any] struct {
	client *Client
	page   *models.CursorPage[T]
}

// NewCursorPaginator wraps an already-fetched first cursor page.
func NewCursorPaginator[T any](c *Client, first *models.CursorPage[T]) *CursorPaginator[T] {
	return &CursorPaginator[T]{client: c, page: first}
}

// Current returns the page the paginator is positioned on.
func (p *CursorPaginator[T]) Current() *models.CursorPage[T] {
	return p.page
}

// Next fetches the following page, or returns (nil, nil) when there is none.
func (p *CursorPaginator[T]) Next(ctx context.Context) (*models.CursorPage[T], error) {
	if p.page == nil || p.page.Next == nil {
		return nil, nil
	}
	data, err := p.client.requestURL(ctx, http.MethodGet, *p.page.Next, nil)
	if err != nil {
		return nil, err
	}
	page, err := decode[models.CursorPage[T]](data)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}
