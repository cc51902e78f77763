package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ekskog/blog-site/internal/server"
	"github.com/ekskog/blog-site/web/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	runtime, err := NewRuntime()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appHandler, err := app.NewHandler(
		runtime.Navigator,
		runtime.Albums,
		&runtime.Config.Site,
		runtime.Logger,
	)
	if err != nil {
		return err
	}

	var srv *server.Server
	router := buildRouter(appHandler, runtime.Config.Site.BasePath, func() bool {
		return srv.Ready()
	})

	srv = server.New(
		&runtime.Config.Server,
		buildMiddleware(runtime).Apply(router),
		runtime.Config.ShutdownTimeoutDuration(),
		runtime.Logger,
	)

	if err := srv.Run(ctx); err != nil {
		runtime.Logger.Error("server error", "error", err)
		return err
	}
	return nil
}
