// Package navigation implements an ordered route table with guarded, props-aware
// navigation. Routes are matched first-match-wins in registration order, guards
// return a single Decision per navigation, and the table is immutable once built.
package navigation

import (
	"fmt"
	"strings"
)

// Route binds a path pattern to a view. Path may contain ":name" parameters
// and a trailing optional ":name?" parameter.
type Route struct {
	Path  string
	Name  string
	View  string
	Props PropsMapper
	Guard Guard
}

type entry struct {
	route   Route
	pattern pattern
}

// Table is an ordered, validated set of routes.
type Table struct {
	entries []entry
	names   map[string]int
}

// NewTable compiles routes in order. It fails if any pattern is invalid, if
// two routes accept the same paths, or if a name is registered twice.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(routes)),
		names:   make(map[string]int),
	}
	shapes := make(map[string]string, len(routes))

	for _, r := range routes {
		p, err := compilePattern(r.Path)
		if err != nil {
			return nil, err
		}

		for _, shape := range p.shapes() {
			if prev, ok := shapes[shape]; ok {
				return nil, fmt.Errorf("%w: %s conflicts with %s", ErrDuplicatePath, r.Path, prev)
			}
			shapes[shape] = r.Path
		}

		if r.Name != "" {
			if _, ok := t.names[r.Name]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
			}
			t.names[r.Name] = len(t.entries)
		}

		t.entries = append(t.entries, entry{route: r, pattern: p})
	}

	return t, nil
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.entries))
	for i, e := range t.entries {
		routes[i] = e.route
	}
	return routes
}

// RouteInfo is the serializable description of a route.
type RouteInfo struct {
	Path    string `json:"path"`
	Name    string `json:"name,omitempty"`
	View    string `json:"view"`
	Guarded bool   `json:"guarded"`
}

// Describe lists the table's routes in registration order.
func (t *Table) Describe() []RouteInfo {
	info := make([]RouteInfo, len(t.entries))
	for i, e := range t.entries {
		info[i] = RouteInfo{
			Path:    e.route.Path,
			Name:    e.route.Name,
			View:    e.route.View,
			Guarded: e.route.Guard != nil,
		}
	}
	return info
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Match returns the first route accepting path along with its extracted parameters.
func (t *Table) Match(path string) (Route, map[string]string, bool) {
	for _, e := range t.entries {
		if params, ok := e.pattern.match(path); ok {
			return e.route, params, true
		}
	}
	return Route{}, nil, false
}

// Href builds the request URI for loc.
func (t *Table) Href(loc Location) (string, error) {
	path := loc.Path
	if loc.Name != "" {
		i, ok := t.names[loc.Name]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownRoute, loc.Name)
		}
		built, err := t.entries[i].pattern.build(loc.Params)
		if err != nil {
			return "", err
		}
		path = built
	}

	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: redirect path %q must start with /", ErrInvalidPattern, path)
	}

	if len(loc.Query) > 0 {
		path += "?" + loc.Query.Encode()
	}
	return path, nil
}
