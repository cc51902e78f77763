package web

import "net/http"

// Router wraps http.ServeMux with an optional fallback for unmatched requests.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler used when no registered pattern matches.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
