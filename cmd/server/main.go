package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blog-site",
		Short: "Serve the ekskog blog",
		Long: `Serves the blog's pages, album players, and catalog API.

Configuration is read from config.toml in the working directory, an optional
config.<SERVICE_ENV>.toml overlay, a .env file, and environment variables.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newRoutesCmd())
	return root
}
