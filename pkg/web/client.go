package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultTimeout applies when no timeout is configured
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies othctl to the university servers
	DefaultUserAgent = "othctl/1.0"

	// DefaultMaxBodySize bounds the size of a fetched page
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// FetchError is returned when a server answers with a non-success status
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unexpected status code %d when fetching %s", e.StatusCode, e.URL)
}

// BodyTooLargeError is returned while reading a response body that exceeds the size limit
type BodyTooLargeError struct {
	URL   string
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("response from %s exceeds %d bytes", e.URL, e.Limit)
}

// Client handles HTTP requests to the blackboard and mensa servers
type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodySize overrides the response size limit
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// NewClient creates a new HTTP client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the given URL and returns the HTTP response.
// The caller closes the body. Any status other than 200 is a *FetchError.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	slog.Debug("fetching", slog.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	resp.Body = &limitedBody{
		r:     io.LimitReader(resp.Body, c.maxBodySize+1),
		c:     resp.Body,
		url:   url,
		limit: c.maxBodySize,
	}
	return resp, nil
}

// limitedBody fails with *BodyTooLargeError instead of silently truncating
type limitedBody struct {
	r     io.Reader
	c     io.Closer
	url   string
	limit int64
	read  int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	b.read += int64(n)
	if b.read > b.limit {
		return n - int(b.read-b.limit), &BodyTooLargeError{URL: b.url, Limit: b.limit}
	}
	return n, err
}

func (b *limitedBody) Close() error {
	return b.c.Close()
}
