// Package blogapi is a client for the remote blog API that lists post summaries.
package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ekskog/blog-site/internal/config"
)

// Client fetches post summaries from the blog API.
type Client struct {
	httpClient *http.Client
	postsURL   string
	userAgent  string
	maxBytes   int64
}

// New creates a client from the blog API configuration. A zero request
// timeout leaves requests bounded only by their context.
func New(cfg *config.BlogAPIConfig) *Client {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.RequestTimeoutDuration()})
}

// NewWithHTTPClient creates a client that issues requests through hc.
func NewWithHTTPClient(cfg *config.BlogAPIConfig, hc *http.Client) *Client {
	return &Client{
		httpClient: hc,
		postsURL:   cfg.PostsURL,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxResponseSizeBytes(),
	}
}

// Posts returns the post summaries in the order the API lists them, newest first.
// Any status outside 2xx yields a *StatusError.
func (c *Client) Posts(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.postsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blogapi: GET %s: %w", c.postsURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: c.postsURL, Status: resp.StatusCode}
	}

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	var posts []string
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("blogapi: decode posts: %w", err)
	}
	return posts, nil
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	if c.maxBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("blogapi: read body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, c.maxBytes)
	}
	return body, nil
}
