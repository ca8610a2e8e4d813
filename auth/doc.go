// Package auth implements the OAuth 2.0 grant flows of the Spotify accounts
// service and the token lifecycle around them.
//
// # Flows
//
// Three flow variants produce a [Token]:
//   - [ClientCredentialsFlow] : app-only access, no user, no refresh token
//   - [AuthorizationCodeFlow] : user authorization with a client secret
//   - [PKCEFlow] : user authorization without a secret, using a code verifier
//
// Tokens are immutable values. Refreshing produces a new Token rather than
// mutating the old one; code sharing a token across goroutines should go
// through a [TokenSource], which guards renewal with a mutex so concurrent
// callers never race two refreshes.
//
// # Authorization helpers
//
// [AuthorizationCodeFlow.AuthURL] and [PKCEFlow.AuthURL] build the user-facing
// authorization URL. [CallbackHandler] captures the redirect on a local HTTP
// server, and [OpenBrowser] points the user's browser at the authorization
// page.
//
// # Errors
//
// Remote rejections surface as [*Error] carrying the accounts service's
// error/error_description payload, unwrapping to [ErrExchange] or [ErrRefresh]
// for errors.Is checks.
package auth
