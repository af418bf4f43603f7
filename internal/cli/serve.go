package cli

import (
	"github.com/spf13/cobra"

	"github.com/yigit/coursecatalog/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the HTTP server",
		Long: `Start the HTTP server. It stops gracefully on SIGINT or SIGTERM.

Examples:
  coursecatalog serve
  SITE_BRAND=anupama SERVER_PORT=9000 coursecatalog serve
  coursecatalog serve --config configs/production.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(opts.configPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
}
