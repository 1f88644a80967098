// Package cli implements the steinerx command-line interface.
//
// The CLI generates prize-collecting test instances, rewrites them into
// Steiner arborescence form and runs the bundled dual-ascent solver on the
// result. It is built with cobra; all commands support --verbose (-v) for
// debug-level logging via the charmbracelet/log library, with the logger
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the steinerx CLI: root command, subcommands, logging setup.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "steinerx",
		Short:        "steinerx solves prize-collecting Steiner problems",
		Long:         `steinerx generates prize-collecting and maximum-weight Steiner instances, transforms them into rooted arborescence form and computes dual bounds and heuristic trees.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBoundCmd())

	return root.ExecuteContext(ctx)
}
