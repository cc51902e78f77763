package main

import (
	"github.com/ekskog/blog-site/pkg/middleware"
)

// buildMiddleware creates the middleware stack: request ids, request logging,
// trailing-slash normalization, and CORS.
func buildMiddleware(runtime *Runtime) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.CORS(&runtime.Config.CORS))
	return middlewareSys
}
