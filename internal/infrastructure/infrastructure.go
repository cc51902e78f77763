// Package infrastructure provides core service initialization for application startup.
// It loads the album catalog and builds the navigation engine, with the home
// guard bound to the blog API client, that the web handlers and CLI commands share.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/ekskog/blog-site/internal/blogapi"
	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/internal/site"
	"github.com/ekskog/blog-site/pkg/navigation"
)

// Infrastructure holds the systems built once at startup.
type Infrastructure struct {
	Logger    *slog.Logger
	Albums    []catalog.Album
	Navigator *navigation.Navigator
}

// New loads the album catalog from source and builds the route table over it.
// A malformed album or a route collision fails startup.
func New(cfg *config.Config, source catalog.Source, logger *slog.Logger) (*Infrastructure, error) {
	albums, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("catalog load failed: %w", err)
	}

	table, err := site.NewTable(albums, blogapi.New(&cfg.BlogAPI), logger)
	if err != nil {
		return nil, fmt.Errorf("route table init failed: %w", err)
	}

	logger.Info("infrastructure ready", "albums", len(albums), "routes", table.Len())

	return &Infrastructure{
		Logger:    logger,
		Albums:    albums,
		Navigator: navigation.New(table, logger),
	}, nil
}
