// Package cli implements the saleschart command-line interface.
//
// Commands:
//   - serve:  run the HTTP API in front of the Postgres sales table
//   - render: fetch the dataset once and write the chart to files
//   - watch:  live terminal chart that refreshes on an interval
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command and package logs through
// the same sink.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"saleschart/pkg/buildinfo"
)

// Execute runs the saleschart CLI and returns an error if any command
// fails.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "saleschart",
		Short:        "saleschart serves and renders product sales bar charts",
		Long:         `saleschart reads the vendas_produto table, serves it as JSON over HTTP, and renders the data as a horizontal bar chart (SVG, PNG, JSON geometry, or live in the terminal).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newWatchCmd(&configPath))

	return root.ExecuteContext(ctx)
}
