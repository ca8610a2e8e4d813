package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/desertthunder/spx/auth"
	"github.com/desertthunder/spx/models"
)

// BaseURL is the Web API root.
const BaseURL = "https://api.spotify.com/v1"

// Client is the single choke point for every Web API call. It attaches
// bearer credentials from its token source, executes requests through the
// injected HTTP transport, and maps responses to typed results.
//
// The transport's lifecycle belongs to the caller: close idle connections on
// shutdown if you own the http.Client. The client itself holds no shared
// mutable state; independent calls may be in flight concurrently and are not
// ordered.
type Client struct {
	baseURL    string
	httpClient *http.Client
	source     auth.TokenSource
	logger     *log.Logger
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP transport. Defaults to http.DefaultClient;
// timeouts are the transport's concern, not the Client's.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the Web API root, mainly for tests against stub
// servers.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger enables debug logging of requests, responses and token events.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRateLimit paces outgoing requests to rps requests per second with the
// given burst. This is pre-emptive throttling only; a 429 from the service is
// still surfaced as a RateLimitError and never retried.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New creates a Client drawing credentials from the given token source.
func New(source auth.TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    BaseURL,
		httpClient: http.DefaultClient,
		source:     source,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request issues a call against a path under the configured base URL.
func (c *Client) request(ctx context.Context, method, path string, q url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return c.requestURL(ctx, method, u, body)
}

// requestURL issues a call against an absolute URL. Paginators use it to
// follow next/previous links verbatim.
func (c *Client) requestURL(ctx context.Context, method, fullURL string, body any) ([]byte, error) {
	if body == nil {
		return c.do(ctx, method, fullURL, nil, "")
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, method, fullURL, bytes.NewReader(data), "application/json")
}

// do is the bottom of the pipeline: limiter, token, headers, execution and
// status mapping.
func (c *Client) do(ctx context.Context, method, fullURL string, body io.Reader, contentType string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	tok, err := c.source.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("api call", "method", method, "url", fullURL, "status", resp.StatusCode)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, mapStatus(resp, data)
}

// mapStatus turns a non-2xx response into the matching typed error.
func mapStatus(resp *http.Response, body []byte) error {
	var payload struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Error.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &Error{Status: resp.StatusCode, Message: msg, kind: ErrAuthentication}
	case http.StatusForbidden:
		return &Error{Status: resp.StatusCode, Message: msg, kind: ErrPermission}
	case http.StatusNotFound:
		return &Error{Status: resp.StatusCode, Message: msg, kind: ErrNotFound}
	case http.StatusTooManyRequests:
		return &RateLimitError{Message: msg, RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}
	return &Error{Status: resp.StatusCode, Message: msg, kind: ErrAPI}
}

func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// decode unmarshals a response body into T, wrapping schema mismatches in a
// DecodeError.
func decode[T any](data []byte) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, newDecodeError(err)
	}
	return v, nil
}

// get issues a GET and decodes the body into T.
func get[T any](ctx context.Context, c *Client, path string, q url.Values) (*T, error) {
	data, err := c.request(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// post issues a POST with an optional JSON body and decodes the response
// into T.
func post[T any](ctx context.Context, c *Client, path string, q url.Values, body any) (*T, error) {
	data, err := c.request(ctx, http.MethodPost, path, q, body)
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// put issues a PUT and discards any response body.
func (c *Client) put(ctx context.Context, path string, q url.Values, body any) error {
	_, err := c.request(ctx, http.MethodPut, path, q, body)
	return err
}

// del issues a DELETE and discards any response body.
func (c *Client) del(ctx context.Context, path string, q url.Values, body any) error {
	_, err := c.request(ctx, http.MethodDelete, path, q, body)
	return err
}

// params builds a query string, skipping unset optional values the way the
// request contract requires.
type params struct {
	url.Values
}

func newParams() params {
	return params{url.Values{}}
}

func (p params) str(key, value string) {
	p.Set(key, value)
}

func (p params) optStr(key string, o models.Optional[string]) {
	if v, ok := o.Value(); ok {
		p.Set(key, v)
	}
}

func (p params) optInt(key string, o models.Optional[int]) {
	if v, ok := o.Value(); ok {
		p.Set(key, strconv.Itoa(v))
	}
}

func (p params) optBool(key string, o models.Optional[bool]) {
	if v, ok := o.Value(); ok {
		p.Set(key, strconv.FormatBool(v))
	}
}
