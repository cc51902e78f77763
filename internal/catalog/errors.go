package catalog

import "errors"

// Catalog errors returned by Source implementations.
var (
	// ErrMalformedAlbum indicates album metadata or a song list that failed to
	// decode or is missing required fields.
	ErrMalformedAlbum = errors.New("catalog: malformed album")

	// ErrInvalidRoute indicates an album entry whose route is not an absolute path.
	ErrInvalidRoute = errors.New("catalog: invalid album route")
)
