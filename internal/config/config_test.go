package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.BlogAPI.PostsURL != config.DefaultPostsURL {
		t.Errorf("BlogAPI.PostsURL = %q, want %q", cfg.BlogAPI.PostsURL, config.DefaultPostsURL)
	}
	if cfg.BlogAPI.RequestTimeoutDuration() != 0 {
		t.Errorf("RequestTimeout = %v, want no timeout", cfg.BlogAPI.RequestTimeoutDuration())
	}
	if cfg.BlogAPI.MaxResponseSizeBytes() != 1000*1000 {
		t.Errorf("MaxResponseSizeBytes() = %d, want 1000000", cfg.BlogAPI.MaxResponseSizeBytes())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_BaseAndOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir, config.BaseConfigFile, `
[server]
port = 9000

[blog_api]
request_timeout = "5s"
`)
	writeFile(t, dir, "config.test.toml", `
shutdown_timeout = "60s"

[server]
port = 9090

[site]
title = "staging"
`)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want 60s", cfg.ShutdownTimeout)
	}
	if cfg.BlogAPI.RequestTimeoutDuration() != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.BlogAPI.RequestTimeoutDuration())
	}
	if cfg.Site.Title != "staging" {
		t.Errorf("Site.Title = %q, want staging", cfg.Site.Title)
	}
}

func TestLoad_DotEnvAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServerPort, "7070")

	// godotenv never overrides variables already present in the environment,
	// so BLOG_API_POSTS_URL is cleared via t.Setenv first to restore it afterwards.
	t.Setenv(config.EnvBlogAPIPostsURL, "")
	os.Unsetenv(config.EnvBlogAPIPostsURL)
	writeFile(t, dir, config.DotEnvFile, "BLOG_API_POSTS_URL=http://localhost:9999/posts\n")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.BlogAPI.PostsURL != "http://localhost:9999/posts" {
		t.Errorf("BlogAPI.PostsURL = %q, want .env value", cfg.BlogAPI.PostsURL)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unparseable toml", "[server\nport = 1"},
		{"bad shutdown timeout", `shutdown_timeout = "soon"`},
		{"bad port", "[server]\nport = 70000"},
		{"bad posts url scheme", "[blog_api]\nposts_url = \"ftp://example.com/posts\""},
		{"negative request timeout", "[blog_api]\nrequest_timeout = \"-1s\""},
		{"bad max response size", "[blog_api]\nmax_response_size = \"lots\""},
		{"relative base path", "[site]\nbase_path = \"blog\""},
		{"bad log level", "[logging]\nlevel = \"loud\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			t.Setenv(config.EnvServiceEnv, "")
			writeFile(t, dir, config.BaseConfigFile, tt.content)

			if _, err := config.Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestSiteConfig_TrimsBasePath(t *testing.T) {
	cfg := &config.SiteConfig{BasePath: "/blog/"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if cfg.BasePath != "/blog" {
		t.Errorf("BasePath = %q, want /blog", cfg.BasePath)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 8081}
	if got := cfg.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8081", got)
	}
}
