// Package cli provides the coursecatalog command line: the HTTP server and
// offline tools to query and validate catalogs.
//
// Configuration is read from --config (or CONFIG_PATH), then overridden by
// environment variables such as SITE_BRAND and LOG_LEVEL.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/coursecatalog/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "coursecatalog",
		Short: "Course catalog server for coaching institutes",
		Long: `coursecatalog serves an institute's course catalog with filtering by
title, class and stream, its results page and WhatsApp admission enquiries.

Quick Start:
  coursecatalog serve                         Start the HTTP server
  coursecatalog courses --class 11            List class 11 courses
  coursecatalog validate catalog.yaml         Check a catalog file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Routed through the environment so the flag wins over the config file.
			if cmd.Flags().Changed("log-level") {
				return os.Setenv("LOG_LEVEL", opts.logLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.GetEnv("CONFIG_PATH", config.DefaultPath), "config file (can also use CONFIG_PATH env var)")
	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(opts),
		newCoursesCmd(opts),
		newValidateCmd(),
	)

	return cmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
