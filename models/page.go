package models

// Page is one page of an offset-paginated listing. Items never exceeds Limit.
type Page[T any] struct {
	Href     string  `json:"href"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Total    int     `json:"total"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Items    []T     `json:"items"`
}

// CursorPage is one page of a cursor-paginated listing, used by the
// recently-played and followed-artists endpoints.
type CursorPage[T any] struct {
	Href    string  `json:"href"`
	Limit   int     `json:"limit"`
	Total   *int    `json:"total"`
	Next    *string `json:"next"`
	Cursors Cursors `json:"cursors"`
	Items   []T     `json:"items"`
}

// Cursors are the keys used to find adjacent cursor pages.
type Cursors struct {
	After  *string `json:"after"`
	Before *string `json:"before"`
}
