package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"
)

// StaticServer serves files from subdir of fsys under the URL prefix.
func StaticServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServerFS(sub)).ServeHTTP
}

// PublicFile serves a single root-level file such as favicon.ico.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	filePath := path.Join(subdir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicRoute pairs a public file handler with its method and pattern.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFileRoutes returns GET routes serving each named file from the site root.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(files))
	for _, f := range files {
		routes = append(routes, PublicRoute{
			Method:  http.MethodGet,
			Pattern: "/" + f,
			Handler: PublicFile(fsys, subdir, f),
		})
	}
	return routes
}
