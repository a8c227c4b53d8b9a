package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ietools/rauzy/pkg/buildinfo"
)

// Execute runs the rauzy CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rauzy",
		Short:        "rauzy explores interval exchange transformations",
		Long:         `rauzy builds Rauzy diagrams of interval exchange and linear involution permutations, walks induction paths to extract matrices and substitutions, and runs concrete numeric interval exchanges.`,
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

	root.AddCommand(newDiagramCmd())
	root.AddCommand(newPermsCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newOrbitCmd())
	root.AddCommand(newIETCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
