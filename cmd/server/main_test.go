package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/internal/site"
	"github.com/ekskog/blog-site/pkg/navigation"
	"github.com/ekskog/blog-site/web/app"
)

type noPosts struct{}

func (noPosts) Posts(context.Context) ([]string, error) { return nil, nil }

func newAppHandler(t *testing.T, basePath string) *app.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	albums, err := catalog.LoadAlbums()
	if err != nil {
		t.Fatalf("LoadAlbums: %v", err)
	}
	table, err := site.NewTable(albums, noPosts{}, logger)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	h, err := app.NewHandler(navigation.New(table, logger), albums, &config.SiteConfig{BasePath: basePath}, logger)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return h
}

func TestBuildRouter_Probes(t *testing.T) {
	ready := false
	router := buildRouter(newAppHandler(t, ""), "", func() bool { return ready })

	tests := []struct {
		name   string
		path   string
		ready  bool
		status int
		body   string
	}{
		{"healthz", "/healthz", false, http.StatusOK, "OK"},
		{"readyz not ready", "/readyz", false, http.StatusServiceUnavailable, "NOT READY"},
		{"readyz ready", "/readyz", true, http.StatusOK, "READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ready = tt.ready
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestBuildRouter_BasePath(t *testing.T) {
	router := buildRouter(newAppHandler(t, "/blog"), "/blog", func() bool { return true })

	for _, path := range []string{"/blog", "/blog/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", path, rec.Code, http.StatusFound)
		}
		if loc := rec.Header().Get("Location"); loc != "/blog/posts" {
			t.Errorf("%s Location = %q, want /blog/posts", path, loc)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/album-wernher-won", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("album status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unprefixed status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRoutesCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOGGING_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"routes"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("routes: %v", err)
	}

	pageTable, apiTable, ok := strings.Cut(strings.TrimSpace(out.String()), "\n\n")
	if !ok {
		t.Fatalf("output has no API section:\n%s", out.String())
	}

	lines := strings.Split(pageTable, "\n")
	if want := 1 + 8 + 2; len(lines) != want {
		t.Fatalf("page lines = %d, want %d:\n%s", len(lines), want, pageTable)
	}
	for _, want := range []string{"PATH", "/post/:date?", "/album-ma-mom", "/album-wernher-won"} {
		if !strings.Contains(pageTable, want) {
			t.Errorf("page table missing %q", want)
		}
	}
	if !strings.HasPrefix(lines[1], "/ ") || !strings.HasSuffix(lines[1], "true") {
		t.Errorf("first route = %q, want guarded /", lines[1])
	}

	apiLines := strings.Split(apiTable, "\n")
	if want := 1 + 3; len(apiLines) != want {
		t.Fatalf("api lines = %d, want %d:\n%s", len(apiLines), want, apiTable)
	}
	wantAPI := [][2]string{{"GET", "/api/albums"}, {"GET", "/api/routes"}, {"GET", "/api/"}}
	for i, want := range wantAPI {
		fields := strings.Fields(apiLines[i+1])
		if len(fields) < 2 || fields[0] != want[0] || fields[1] != want[1] {
			t.Errorf("api line %d = %q, want %s %s", i+1, apiLines[i+1], want[0], want[1])
		}
	}
}
