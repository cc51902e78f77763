// Package app serves the blog's pages: embedded templates and assets, the
// navigation-driven page handler, and a small JSON API over the catalog and
// the route table.
package app

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/internal/site"
	"github.com/ekskog/blog-site/pkg/handlers"
	"github.com/ekskog/blog-site/pkg/navigation"
	"github.com/ekskog/blog-site/pkg/routes"
	"github.com/ekskog/blog-site/pkg/web"
)

//go:embed static
var staticFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"robots.txt",
}

var views = []web.ViewDef{
	{Name: site.ViewHome, Template: "home.html", Title: "Home", Bundle: "app"},
	{Name: site.ViewPosts, Template: "posts.html", Title: "Posts", Bundle: "app"},
	{Name: site.ViewSearch, Template: "search.html", Title: "Search", Bundle: "app"},
	{Name: site.ViewArchive, Template: "archive.html", Title: "Archive", Bundle: "app"},
	{Name: site.ViewRandomImage, Template: "random-image.html", Title: "Random image", Bundle: "app"},
	{Name: site.ViewExploreDay, Template: "explore-day.html", Title: "Explore a day", Bundle: "app"},
	{Name: site.ViewPost, Template: "post.html", Title: "Post", Bundle: "app"},
	{Name: site.ViewHarp, Template: "harp.html", Title: "The Harp", Bundle: "player"},
	{Name: site.ViewAlbum, Template: "album.html", Title: "Album", Bundle: "player"},
}

var (
	notFoundView = web.ViewDef{Name: "404", Template: "404.html", Title: "Not Found", Bundle: "app"}
	errorView    = web.ViewDef{Name: "error", Template: "error.html", Title: "Error", Bundle: "app"}
)

var (
	// ErrUnknownView is returned when a route names a view with no template.
	ErrUnknownView = errors.New("unknown view")

	// ErrUnknownEndpoint is reported for /api paths with no handler.
	ErrUnknownEndpoint = errors.New("unknown api endpoint")
)

// Handler serves pages resolved through a navigation.Navigator.
type Handler struct {
	nav       *navigation.Navigator
	albums    []catalog.Album
	templates *web.TemplateSet
	views     map[string]web.ViewDef
	notFound  http.HandlerFunc
	failure   http.HandlerFunc
	basePath  string
	logger    *slog.Logger
}

// NewHandler parses the embedded templates and verifies that every route in
// the navigator's table has a view to render.
func NewHandler(nav *navigation.Navigator, albums []catalog.Album, cfg *config.SiteConfig, logger *slog.Logger) (*Handler, error) {
	allViews := append([]web.ViewDef{notFoundView, errorView}, views...)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		cfg.Title,
		allViews,
	)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]web.ViewDef, len(views))
	for _, v := range views {
		byName[v.Name] = v
	}
	for _, r := range nav.Table().Routes() {
		if _, ok := byName[r.View]; !ok {
			return nil, fmt.Errorf("%w: %s (route %s)", ErrUnknownView, r.View, r.Path)
		}
	}

	return &Handler{
		nav:       nav,
		albums:    albums,
		templates: ts,
		views:     byName,
		notFound:  ts.ErrorHandler(layout, notFoundView, http.StatusNotFound),
		failure:   ts.ErrorHandler(layout, errorView, http.StatusInternalServerError),
		basePath:  cfg.BasePath,
		logger:    logger.With("handler", "app"),
	}, nil
}

// Routes returns the JSON API group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "Catalog and route table",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/albums", Description: "List catalog albums", Handler: h.ListAlbums},
			{Method: "GET", Pattern: "/routes", Description: "List page routes", Handler: h.ListRoutes},
			{Method: "GET", Pattern: "/", Description: "Unknown endpoints answer 404", Handler: h.unknownEndpoint},
		},
	}
}

// Router registers assets, public files, and the API. Every other request
// falls through to navigation.
func (h *Handler) Router() http.Handler {
	r := web.NewRouter()
	r.HandleFunc("GET /static/", web.StaticServer(staticFS, "static", "/static/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	routes.Register(r, h.Routes())
	r.SetFallback(h.Navigate)
	return r
}

// Navigate resolves the request path through the route table and answers
// with the page, a redirect, or an empty response for aborted navigations.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	result, err := h.nav.Navigate(r.Context(), navigation.TargetFromURL(r.URL))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	switch result.Kind {
	case navigation.ResultRedirected:
		http.Redirect(w, r, h.basePath+result.Location, http.StatusFound)
	case navigation.ResultAborted:
		w.WriteHeader(http.StatusNoContent)
	default:
		view := h.views[result.Route.View]
		if name, ok := result.Props["albumName"].(string); ok && name != "" {
			view.Title = name
		}
		h.templates.RenderStatus(w, layout, view, http.StatusOK, result.Props)
	}
}

// ListAlbums returns the catalog loaded at startup.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.albums)
}

// ListRoutes returns the page route table in match order.
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.nav.Table().Describe())
}

func (h *Handler) unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	handlers.RespondError(w, r, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrUnknownEndpoint, r.URL.Path))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if navigation.MapHTTPStatus(err) == http.StatusNotFound {
		h.notFound(w, r)
		return
	}
	h.logger.Error("navigation failed", "path", r.URL.Path, "error", err)
	h.failure(w, r)
}
