package site

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/ekskog/blog-site/pkg/navigation"
)

// PostLister lists post summaries, newest first.
type PostLister interface {
	Posts(ctx context.Context) ([]string, error)
}

var postDatePattern = regexp.MustCompile(`Date: (\d{2})(\d{2})(\d{4})`)

// ExtractPostDate finds the "Date: " line in a post summary and returns its
// three digit groups concatenated in the order they appear. The digits are not
// reinterpreted as a calendar date.
func ExtractPostDate(summary string) (string, bool) {
	m := postDatePattern.FindStringSubmatch(summary)
	if m == nil {
		return "", false
	}
	return m[1] + m[2] + m[3], true
}

// LatestPostDate returns the route date of the first listed post.
func LatestPostDate(ctx context.Context, posts PostLister) (string, error) {
	summaries, err := posts.Posts(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "", ErrNoPosts
	}

	date, ok := ExtractPostDate(summaries[0])
	if !ok {
		return "", fmt.Errorf("%w: %.40q", ErrNoPostDate, summaries[0])
	}
	return date, nil
}

// HomeGuard redirects the home route to the most recent post, or to the post
// list when the latest post cannot be determined for any reason. Failures are
// not surfaced to the visitor.
func HomeGuard(posts PostLister, logger *slog.Logger) navigation.Guard {
	return func(ctx context.Context, to navigation.Target) navigation.Decision {
		date, err := LatestPostDate(ctx, posts)
		if err != nil {
			logger.Debug("latest post unavailable, falling back to post list", "error", err)
			return navigation.Redirect(navigation.PathLocation(PathPosts))
		}

		return navigation.Redirect(navigation.NamedLocation(RoutePost, map[string]string{
			"date": date,
		}))
	}
}
