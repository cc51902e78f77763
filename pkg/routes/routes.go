// Package routes registers grouped HTTP routes on a ServeMux-style router.
package routes

import "net/http"

// Registrar is satisfied by *http.ServeMux and *web.Router.
type Registrar interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Register adds every route of each group, and of its children, to r with
// the group prefixes joined in front of the route pattern.
func Register(r Registrar, groups ...Group) {
	for _, g := range groups {
		register(r, "", g)
	}
}

func register(r Registrar, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		r.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(r, prefix, child)
	}
}

// Endpoints flattens groups into their full method and path pairs in
// registration order.
func Endpoints(groups ...Group) []Endpoint {
	var out []Endpoint
	for _, g := range groups {
		out = appendEndpoints(out, "", g)
	}
	return out
}

func appendEndpoints(out []Endpoint, parentPrefix string, group Group) []Endpoint {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		out = append(out, Endpoint{
			Method:      route.Method,
			Path:        prefix + route.Pattern,
			Description: route.Description,
		})
	}
	for _, child := range group.Children {
		out = appendEndpoints(out, prefix, child)
	}
	return out
}
