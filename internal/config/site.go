package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvSiteBasePath = "SITE_BASE_PATH"
	EnvSiteTitle    = "SITE_TITLE"
)

// SiteConfig contains presentation settings for the rendered site.
type SiteConfig struct {
	// BasePath prefixes generated asset URLs in templates. Empty serves from root.
	BasePath string `toml:"base_path"`
	Title    string `toml:"title"`
}

// Finalize applies defaults, loads environment overrides, and validates the site configuration.
func (c *SiteConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
}

func (c *SiteConfig) loadDefaults() {
	if c.Title == "" {
		c.Title = "ekskog"
	}
}

func (c *SiteConfig) loadEnv() {
	if v := os.Getenv(EnvSiteBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvSiteTitle); v != "" {
		c.Title = v
	}
}

func (c *SiteConfig) validate() error {
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	return nil
}
