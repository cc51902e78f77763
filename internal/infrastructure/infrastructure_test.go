package infrastructure_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/internal/infrastructure"
	"github.com/ekskog/blog-site/pkg/navigation"
)

type albumSource struct {
	albums []catalog.Album
	err    error
}

func (s albumSource) Load() ([]catalog.Album, error) {
	return s.albums, s.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BlogAPI.PostsURL = "http://127.0.0.1:1/posts"
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Embedded(t *testing.T) {
	infra, err := infrastructure.New(testConfig(), catalog.Embedded(), discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(infra.Albums) != 2 {
		t.Errorf("len(Albums) = %d, want 2", len(infra.Albums))
	}
	if got, want := infra.Navigator.Table().Len(), 8+len(infra.Albums); got != want {
		t.Errorf("routes = %d, want %d", got, want)
	}
}

func TestNew_CatalogError(t *testing.T) {
	_, err := infrastructure.New(testConfig(), albumSource{err: catalog.ErrMalformedAlbum}, discard())
	if !errors.Is(err, catalog.ErrMalformedAlbum) {
		t.Errorf("err = %v, want ErrMalformedAlbum", err)
	}
}

func TestNew_MalformedEmbeddedFS(t *testing.T) {
	fsys := fstest.MapFS{
		"broken/album.toml": {Data: []byte(`name = "Broken"` + "\nunknown = 1\n")},
		"broken/songs.toml": {Data: []byte("")},
	}
	source := catalog.FS(fsys, catalog.Entry{Dir: "broken", Route: "/album-broken"})

	_, err := infrastructure.New(testConfig(), source, discard())
	if !errors.Is(err, catalog.ErrMalformedAlbum) {
		t.Errorf("err = %v, want ErrMalformedAlbum", err)
	}
}

func TestNew_RouteCollision(t *testing.T) {
	source := albumSource{albums: []catalog.Album{
		{Name: "Shadow", Route: "/posts", Songs: []catalog.Song{}},
	}}

	_, err := infrastructure.New(testConfig(), source, discard())
	if !errors.Is(err, navigation.ErrDuplicatePath) {
		t.Errorf("err = %v, want ErrDuplicatePath", err)
	}
}
