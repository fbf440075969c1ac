package prana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the Prana cloud API base URL.
	DefaultBaseURL = "https://iot.sensesaytech.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRPCTimeout is how long the platform waits for a device to answer
	// a two-way RPC.
	DefaultRPCTimeout = 10 * time.Second
)

// Client is a Prana cloud API client. It is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rpcTimeout  time.Duration
	autoRefresh bool
	tokens      *TokenManager
	classifier  ResponseClassifier
	logger      *slog.Logger

	// refreshes de-duplicates concurrent token refreshes.
	refreshes singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout. When it follows WithHTTPClient,
// the timeout is set on a copy; the caller's *http.Client is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := http.Client{}
		if c.httpClient != nil {
			hc = *c.httpClient
		}
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithRPCTimeout sets the default timeout passed to the platform for two-way RPC.
func WithRPCTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rpcTimeout = timeout
	}
}

// WithAutoRefresh enables or disables transparent access token refresh.
func WithAutoRefresh(enabled bool) Option {
	return func(c *Client) {
		c.autoRefresh = enabled
	}
}

// WithTokens seeds the client with an existing token pair.
func WithTokens(pair TokenPair) Option {
	return func(c *Client) {
		c.tokens.SetTokens(pair)
	}
}

// WithClassifier replaces the response classifier.
func WithClassifier(classifier ResponseClassifier) Option {
	return func(c *Client) {
		c.classifier = classifier
	}
}

// WithClock sets the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.tokens.now = now
	}
}

// NewClient creates a new Prana API client.
// Returns a configuration error if the base URL is not an absolute http(s) URL.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: newTransport(),
		},
		rpcTimeout:  DefaultRPCTimeout,
		autoRefresh: true,
		tokens:      NewTokenManager(nil),
		classifier:  DefaultClassifier{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")
	u, err := url.Parse(c.baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &APIError{
			Kind:    KindConfiguration,
			Message: fmt.Sprintf("invalid base URL %q", c.baseURL),
			Err:     err,
		}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout, Transport: newTransport()}
	}
	if c.classifier == nil {
		c.classifier = DefaultClassifier{}
	}

	return c, nil
}

// newTransport returns the default pooled transport.
func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// Close releases the client's idle connections. The client must not be used
// afterwards.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TokenManager returns the client's token manager.
func (c *Client) TokenManager() *TokenManager {
	return c.tokens
}

// IsAuthenticated reports whether the client holds an access token.
func (c *Client) IsAuthenticated() bool {
	return c.tokens.IsAuthenticated()
}

// request describes one API call.
type request struct {
	method string
	path   string
	// route is the path template used as a metrics label.
	route  string
	query  url.Values
	body   any
	noAuth bool
}

// do performs a request and returns the classified payload.
func (c *Client) do(ctx context.Context, r request) (any, error) {
	if !r.noAuth {
		if err := c.refreshIfNeeded(ctx); err != nil {
			return nil, err
		}
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var reqBody io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if !r.noAuth {
		for key, values := range c.tokens.AuthorizationHeader() {
			req.Header[key] = values
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(r.method, r.route, 0, time.Since(start))
		return nil, &APIError{Kind: KindNetwork, Message: "Network error: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	observeRequest(r.method, r.route, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &APIError{
			Kind:       KindNetwork,
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body: " + err.Error(),
			Err:        err,
		}
	}

	return c.classifier.Classify(resp.StatusCode, resp.Header, body)
}

// refreshIfNeeded refreshes the access token when auto-refresh is on, the
// client is authenticated, the access token has expired and the refresh token
// has not.
func (c *Client) refreshIfNeeded(ctx context.Context) error {
	if !c.autoRefresh ||
		!c.tokens.IsAuthenticated() ||
		!c.tokens.IsAccessTokenExpired() ||
		c.tokens.IsRefreshTokenExpired() {
		return nil
	}
	_, err := c.RefreshToken(ctx)
	return err
}

// expectObject checks that a success payload is a JSON object.
func expectObject(payload any, resource string) (map[string]any, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, &APIError{
			Kind:       KindAPI,
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("failed to parse %s: unexpected response %T", resource, payload),
		}
	}
	return obj, nil
}

// pageQuery encodes paging options.
func pageQuery(opts *PageOptions, withSearch bool) url.Values {
	page, size, search := 0, DefaultPageSize, ""
	if opts != nil {
		page = opts.Page
		if opts.PageSize > 0 {
			size = opts.PageSize
		}
		search = opts.TextSearch
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(size))
	if withSearch && search != "" {
		q.Set("textSearch", search)
	}
	return q
}
