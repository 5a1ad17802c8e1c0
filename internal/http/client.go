package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "tvdb-fanart"
)

// Client wraps HTTP operations with TheTVDB-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Optional rate limiting shared by every request made through it
//   - File size retrieval via HEAD requests
//
// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit limits the client to rps requests per second.
// A value <= 0 disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient replaces the underlying *http.Client. Useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new HTTP client.
//
// By default the client uses a 60 second timeout, the "tvdb-fanart"
// User-Agent header and no rate limit.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned when the server answers with a status other
// than 200 OK.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Status)
}

func (c *Client) do(ctx context.Context, method, url string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	return c.httpClient.Do(req)
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (*StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like
// banners documents.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetFileSize returns the size of a file at the given URL via HEAD request.
//
// Returns an error if the request fails or the server doesn't return a
// Content-Length header.
func (c *Client) GetFileSize(ctx context.Context, url string) (int64, error) {
	resp, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &StatusError{Method: http.MethodHead, URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length header for %s", url)
	}

	return resp.ContentLength, nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for artwork; thumbnails and vignettes are small enough to keep
// in memory.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
