package site

import "errors"

var (
	// ErrNoPosts indicates the blog API listed no posts.
	ErrNoPosts = errors.New("site: no posts listed")

	// ErrNoPostDate indicates the latest post summary carries no "Date: MMDDYYYY" line.
	ErrNoPostDate = errors.New("site: latest post has no date")
)
