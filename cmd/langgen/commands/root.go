package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/langgen/internal/version"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/ui"
)

// NewRootCmd builds the langgen command tree. Flags bind to fields on
// the returned command's subcommands, so each call yields an
// independent tree (tests rely on that).
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		format    string
		outFormat ui.Format
	)

	rootCmd := &cobra.Command{
		Use:   "langgen",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			outFormat = parsed

			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newNewCmd(&dryRun, &outFormat))
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Run executes the command tree and surfaces any fatal error on errOut.
// Cobra's own error printing is silenced, so this is the single place a
// ValidationError or RootNotFoundError reaches the user. Returns the
// process exit code.
func Run(args []string, out, errOut io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if f, ok := errOut.(*os.File); ok && ui.DetectFormat(f) == ui.FormatTerminal {
			msg = report.ErrorStyle().Render(msg)
		}
		fmt.Fprintln(errOut, msg)
		return 1
	}
	return 0
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "langgen version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
