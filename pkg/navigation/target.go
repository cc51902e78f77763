package navigation

import (
	"fmt"
	"maps"
	"net/url"
)

// Target describes where a navigation is headed. Params is populated by the
// table when a route matches; Query carries the raw query string values.
type Target struct {
	Path   string
	Params map[string]string
	Query  url.Values
}

// ParseTarget builds a Target from a request URI such as "/post?date=010125".
func ParseTarget(rawURL string) (Target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, fmt.Errorf("parse target %q: %w", rawURL, err)
	}
	return TargetFromURL(u), nil
}

// TargetFromURL builds a Target from an already parsed URL.
func TargetFromURL(u *url.URL) Target {
	path := u.Path
	if path == "" {
		path = "/"
	}
	return Target{
		Path:  path,
		Query: u.Query(),
	}
}

// Param returns the named path parameter, or "" when absent.
func (t Target) Param(name string) string {
	return t.Params[name]
}

// QueryValue returns the first value of the named query parameter, or "" when absent.
func (t Target) QueryValue(name string) string {
	return t.Query.Get(name)
}

// HasQuery reports whether the named query parameter is present with a non-empty value.
func (t Target) HasQuery(name string) bool {
	return t.Query.Get(name) != ""
}

func (t Target) withParams(params map[string]string) Target {
	t.Params = maps.Clone(params)
	return t
}

// Location identifies a redirect destination, either by literal Path or by
// route Name plus Params. Name takes precedence when both are set.
type Location struct {
	Path   string
	Name   string
	Params map[string]string
	Query  url.Values
}

// PathLocation returns a Location pointing at a literal path.
func PathLocation(path string) Location {
	return Location{Path: path}
}

// NamedLocation returns a Location pointing at a named route.
func NamedLocation(name string, params map[string]string) Location {
	return Location{Name: name, Params: params}
}

func (l Location) String() string {
	if l.Name != "" {
		return fmt.Sprintf("{name: %s, params: %v}", l.Name, l.Params)
	}
	return l.Path
}
