package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns an error if any command fails. The
// logger is attached to the command context in PersistentPreRun and is
// accessible to all subcommands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "spicecli",
		Short:        "Compile schematics to netlists and interpret simulator output",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCompileCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newPlotCmd())

	return root.ExecuteContext(context.Background())
}
