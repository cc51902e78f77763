// Package catalog loads the compiled-in album catalog. Each album is a pair of
// embedded TOML files, album.toml for metadata and songs.toml for the song
// list, joined with a hand-assigned route. New albums are added by editing the
// entries below and rebuilding.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed albums
var albumFS embed.FS

const (
	metadataFile = "album.toml"
	songsFile    = "songs.toml"
)

// Entry names one album source: the directory holding its TOML files and the
// route it is served under.
type Entry struct {
	Dir   string
	Route string
}

var entries = []Entry{
	{Dir: "albums/ma-mom", Route: "/album-ma-mom"},
	{Dir: "albums/wernher-won", Route: "/album-wernher-won"},
}

// Source produces the ordered album catalog.
type Source interface {
	Load() ([]Album, error)
}

type fsSource struct {
	fsys    fs.FS
	entries []Entry
}

// Embedded returns the compiled-in catalog source.
func Embedded() Source {
	return FS(albumFS, entries...)
}

// FS returns a Source reading the given entries from fsys.
func FS(fsys fs.FS, entries ...Entry) Source {
	return &fsSource{fsys: fsys, entries: entries}
}

// LoadAlbums decodes the compiled-in catalog. Every call decodes afresh and
// returns newly allocated records.
func LoadAlbums() ([]Album, error) {
	return Embedded().Load()
}

// Load decodes every entry in order.
func (s *fsSource) Load() ([]Album, error) {
	albums := make([]Album, 0, len(s.entries))
	for _, e := range s.entries {
		album, err := s.load(e)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Dir, err)
		}
		albums = append(albums, album)
	}
	return albums, nil
}

func (s *fsSource) load(e Entry) (Album, error) {
	if !strings.HasPrefix(e.Route, "/") {
		return Album{}, fmt.Errorf("%w: %q", ErrInvalidRoute, e.Route)
	}

	var album Album
	if err := decode(s.fsys, path.Join(e.Dir, metadataFile), &album); err != nil {
		return Album{}, err
	}

	var list struct {
		Songs []Song `toml:"songs"`
	}
	if err := decode(s.fsys, path.Join(e.Dir, songsFile), &list); err != nil {
		return Album{}, err
	}

	album.Songs = list.Songs
	if album.Songs == nil {
		album.Songs = []Song{}
	}
	album.Route = e.Route

	if err := album.validate(); err != nil {
		return Album{}, err
	}
	return album, nil
}

func decode(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedAlbum, name, err)
	}
	return nil
}
