package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvBlogAPIPostsURL overrides the posts listing endpoint.
	EnvBlogAPIPostsURL = "BLOG_API_POSTS_URL"

	// EnvBlogAPIRequestTimeout overrides the posts request timeout. "0s" disables it.
	EnvBlogAPIRequestTimeout = "BLOG_API_REQUEST_TIMEOUT"

	// EnvBlogAPIMaxResponseSize overrides the response body cap (e.g. "1MB").
	EnvBlogAPIMaxResponseSize = "BLOG_API_MAX_RESPONSE_SIZE"

	EnvBlogAPIUserAgent = "BLOG_API_USER_AGENT"
)

// DefaultPostsURL is the blog API posts listing consulted by the home redirect.
const DefaultPostsURL = "https://blog-api.ekskog.xyz/posts"

// BlogAPIConfig configures the remote blog API client.
type BlogAPIConfig struct {
	PostsURL string `toml:"posts_url"`

	// RequestTimeout bounds the posts request. The default "0s" applies no
	// timeout; the request then lives as long as the inbound request context.
	RequestTimeout string `toml:"request_timeout"`

	MaxResponseSize    string `toml:"max_response_size"`
	UserAgent          string `toml:"user_agent"`
	maxResponseSizeVal int64
}

func (c *BlogAPIConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// MaxResponseSizeBytes returns the parsed response cap. Valid after Finalize.
func (c *BlogAPIConfig) MaxResponseSizeBytes() int64 {
	return c.maxResponseSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the blog API configuration.
func (c *BlogAPIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *BlogAPIConfig) Merge(overlay *BlogAPIConfig) {
	if overlay.PostsURL != "" {
		c.PostsURL = overlay.PostsURL
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.MaxResponseSize != "" {
		c.MaxResponseSize = overlay.MaxResponseSize
	}
	if overlay.UserAgent != "" {
		c.UserAgent = overlay.UserAgent
	}
}

func (c *BlogAPIConfig) loadDefaults() {
	if c.PostsURL == "" {
		c.PostsURL = DefaultPostsURL
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "0s"
	}
	if c.MaxResponseSize == "" {
		c.MaxResponseSize = "1MB"
	}
	if c.UserAgent == "" {
		c.UserAgent = "ekskog-blog-site"
	}
}

func (c *BlogAPIConfig) loadEnv() {
	if v := os.Getenv(EnvBlogAPIPostsURL); v != "" {
		c.PostsURL = v
	}
	if v := os.Getenv(EnvBlogAPIRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
	if v := os.Getenv(EnvBlogAPIMaxResponseSize); v != "" {
		c.MaxResponseSize = v
	}
	if v := os.Getenv(EnvBlogAPIUserAgent); v != "" {
		c.UserAgent = v
	}
}

func (c *BlogAPIConfig) validate() error {
	u, err := url.Parse(c.PostsURL)
	if err != nil {
		return fmt.Errorf("invalid posts_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid posts_url: scheme must be http or https")
	}

	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}

	size, err := units.FromHumanSize(c.MaxResponseSize)
	if err != nil {
		return fmt.Errorf("invalid max_response_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_response_size must be positive")
	}
	c.maxResponseSizeVal = size

	return nil
}
