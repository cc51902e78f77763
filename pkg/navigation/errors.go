package navigation

import (
	"errors"
	"net/http"
)

// Navigation errors returned by Table and Navigator.
var (
	// ErrInvalidPattern indicates a route path that cannot be compiled.
	ErrInvalidPattern = errors.New("navigation: invalid route pattern")

	// ErrDuplicatePath indicates two routes whose patterns match the same set of paths.
	ErrDuplicatePath = errors.New("navigation: duplicate route path")

	// ErrDuplicateName indicates two routes registered under the same name.
	ErrDuplicateName = errors.New("navigation: duplicate route name")

	// ErrUnknownRoute indicates a named location that does not exist in the table.
	ErrUnknownRoute = errors.New("navigation: unknown route")

	// ErrMissingParam indicates a required parameter was not supplied when building a path.
	ErrMissingParam = errors.New("navigation: missing route parameter")

	// ErrNoMatch indicates a path that no route in the table accepts.
	ErrNoMatch = errors.New("navigation: no route matches path")

	// ErrRedirectLoop indicates Resolve followed more than MaxRedirects redirects.
	ErrRedirectLoop = errors.New("navigation: too many redirects")
)

// MapHTTPStatus maps navigation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoMatch) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
