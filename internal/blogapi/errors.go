package blogapi

import (
	"errors"
	"fmt"
)

// ErrResponseTooLarge indicates a response body exceeding the configured cap.
var ErrResponseTooLarge = errors.New("blogapi: response too large")

// StatusError reports a non-success HTTP status from the blog API.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("blogapi: GET %s: HTTP %d", e.URL, e.Status)
}
