package main

import (
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ekskog/blog-site/pkg/routes"
	"github.com/ekskog/blog-site/web/app"
)

// buildRouter mounts the site under basePath next to the health probes.
func buildRouter(site *app.Handler, basePath string, ready func() bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if basePath == "" {
		mux.Handle("/", site.Router())
	} else {
		mounted := mount(basePath, site.Router())
		mux.Handle(basePath, mounted)
		mux.Handle(basePath+"/", mounted)
	}

	return mux
}

// mount strips prefix from the request path. The bare prefix maps to "/" so
// it is served directly instead of redirecting back to a trailing slash.
func mount(prefix string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := new(http.Request)
		*r2 = *r
		u := *r.URL
		u.Path = strings.TrimPrefix(r.URL.Path, prefix)
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawPath = ""
		r2.URL = &u
		h.ServeHTTP(w, r2)
	})
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page route table in match order and the API endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, err := NewRuntime()
			if err != nil {
				return err
			}

			appHandler, err := app.NewHandler(
				runtime.Navigator,
				runtime.Albums,
				&runtime.Config.Site,
				runtime.Logger,
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tNAME\tVIEW\tGUARDED")
			for _, r := range runtime.Navigator.Table().Describe() {
				name := r.Name
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", r.Path, name, r.View, r.Guarded)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)

			w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tDESCRIPTION")
			for _, e := range routes.Endpoints(appHandler.Routes()) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Method, runtime.Config.Site.BasePath+e.Path, e.Description)
			}
			return w.Flush()
		},
	}
}
