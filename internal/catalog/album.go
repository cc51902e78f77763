package catalog

import (
	"fmt"
	"slices"
	"time"
)

// Album is a normalized catalog record: display metadata, an ordered song
// list, and the route path the album is served under.
type Album struct {
	Name   string `toml:"name" json:"name"`
	Artist string `toml:"artist" json:"artist,omitempty"`
	Cover  string `toml:"cover" json:"cover,omitempty"`
	Year   int    `toml:"year" json:"year,omitempty"`
	Songs  []Song `toml:"-" json:"songs"`
	Route  string `toml:"-" json:"route"`
}

// Song is a single playable track of an album.
type Song struct {
	Title    string   `toml:"title" json:"title"`
	Src      string   `toml:"src" json:"src"`
	Duration Duration `toml:"duration" json:"duration,omitempty"`
}

// Duration is a track length written as a Go duration string ("3m12s").
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Clone returns a deep copy of the album.
func (a Album) Clone() Album {
	a.Songs = slices.Clone(a.Songs)
	return a
}

func (a Album) validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name required", ErrMalformedAlbum)
	}
	for i, s := range a.Songs {
		if s.Title == "" || s.Src == "" {
			return fmt.Errorf("%w: %s song %d requires title and src", ErrMalformedAlbum, a.Name, i+1)
		}
	}
	return nil
}
