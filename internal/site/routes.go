// Package site defines the blog's route table: static pages, the post and
// search views with their props rules, one route per catalog album, and the
// home route's redirect guard.
package site

import (
	"log/slog"

	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/pkg/navigation"
)

// Route names.
const (
	RouteHome        = "home"
	RoutePosts       = "posts"
	RouteSearch      = "search"
	RouteArchive     = "archive"
	RouteRandomImage = "random-image"
	RouteExploreDay  = "explore-day"
	RoutePost        = "post"
	RouteHarp        = "harp"
)

// View names, matching the templates under web/app.
const (
	ViewHome        = "home"
	ViewPosts       = "posts"
	ViewSearch      = "search"
	ViewArchive     = "archive"
	ViewRandomImage = "random-image"
	ViewExploreDay  = "explore-day"
	ViewPost        = "post"
	ViewHarp        = "harp"
	ViewAlbum       = "album"
)

const PathPosts = "/posts"

// Routes returns the ordered route table: static routes first, then one album
// route per catalog record in catalog order.
func Routes(albums []catalog.Album, posts PostLister, logger *slog.Logger) []navigation.Route {
	routes := []navigation.Route{
		{Path: "/", Name: RouteHome, View: ViewHome, Guard: HomeGuard(posts, logger)},
		{Path: PathPosts, Name: RoutePosts, View: ViewPosts},
		{Path: "/search", Name: RouteSearch, View: ViewSearch, Props: SearchProps},
		{Path: "/archive", Name: RouteArchive, View: ViewArchive},
		{Path: "/rimg", Name: RouteRandomImage, View: ViewRandomImage},
		{Path: "/explore-day", Name: RouteExploreDay, View: ViewExploreDay},
		{Path: "/post/:date?", Name: RoutePost, View: ViewPost, Props: PostProps},
		{Path: "/the-harp", Name: RouteHarp, View: ViewHarp},
	}

	for _, album := range albums {
		routes = append(routes, AlbumRoute(album))
	}
	return routes
}

// NewTable builds and validates the route table. An album route that collides
// with any other route fails construction.
func NewTable(albums []catalog.Album, posts PostLister, logger *slog.Logger) (*navigation.Table, error) {
	return navigation.NewTable(Routes(albums, posts, logger)...)
}

// AlbumRoute binds an album's route to the shared album view with props fixed
// from the record.
func AlbumRoute(album catalog.Album) navigation.Route {
	return navigation.Route{
		Path: album.Route,
		View: ViewAlbum,
		Props: navigation.StaticProps(navigation.Props{
			"albumName": album.Name,
			"songs":     album.Clone().Songs,
		}),
	}
}

// SearchProps passes the "tag" query parameter to the search view.
func SearchProps(to navigation.Target) navigation.Props {
	return navigation.Props{"tag": to.QueryValue("tag")}
}

// PostProps passes the post date to the post view under the "tag" prop,
// preferring the "date" query parameter over the path parameter.
func PostProps(to navigation.Target) navigation.Props {
	tag := to.Param("date")
	if to.HasQuery("date") {
		tag = to.QueryValue("date")
	}
	return navigation.Props{"tag": tag}
}
