// Package api provides the Web API client: a single request dispatcher with
// a typed error taxonomy, the endpoint surface for the music catalog, and
// paginators for walking listing responses.
//
// # Client
//
// Construct a [Client] with a token source from the auth package; every call
// flows through one pipeline that attaches the bearer credential, executes
// the request and maps failures to typed errors:
//
//	flow := auth.ClientCredentialsFlow{ClientID: id, ClientSecret: secret}
//	client := api.New(flow.Source(nil))
//	album, err := client.GetAlbum(ctx, "4aawyAB9vmqN3uQ7FjRGTy", api.MarketOpts{})
//
// # Errors
//
// Failures are classified by sentinel: [ErrAuthentication], [ErrPermission],
// [ErrNotFound], [ErrRateLimited], [ErrAPI] and [ErrDecode]. Use errors.Is
// to branch and errors.As to reach the concrete types:
//
//	var rle *api.RateLimitError
//	if errors.As(err, &rle) {
//		time.Sleep(rle.RetryAfter)
//	}
//
// A 429 is reported, never retried; backing off is the caller's decision.
//
// # Pagination
//
// Listing endpoints return a models.Page. Wrap one in a [Paginator] to walk
// the next/previous links, or call All to drain the remainder.
package api
