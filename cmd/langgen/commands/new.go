package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/langgen/pkg/generator"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/ui"
)

func newNewCmd(dryRun *bool, format *ui.Format) *cobra.Command {
	var (
		extensions   []string
		registration string
		parser       string
		protect      bool
		root         string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: MsgNewShort,
		Long:  MsgNewLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir, err := os.Getwd()
			if err != nil {
				return err
			}

			opts := generator.Options{
				Name:         args[0],
				Extensions:   extensions,
				Parser:       parser,
				Registration: registration,
				DryRun:       *dryRun,
				Root:         root,
				StartDir:     startDir,
			}
			// Only a flag the user actually set overrides the project
			// config's protect default.
			if cmd.Flags().Changed("protect") {
				opts.Protect = &protect
			}

			rep, err := generator.Run(opts)
			if err != nil {
				return err
			}

			styled := ui.Resolve(*format, os.Stdout) == ui.FormatTerminal
			rep.Render(cmd.OutOrStdout(), styled)

			if *dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}

			if rep.HasErrors() {
				return fmt.Errorf("generation finished with %d error(s)", rep.Count(report.ActionError))
			}
			if !*dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNextSteps, args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, MsgFlagExtensions)
	cmd.Flags().StringVar(&registration, "registration", "", MsgFlagRegistration)
	cmd.Flags().StringVar(&parser, "parser", "", MsgFlagParser)
	cmd.Flags().BoolVar(&protect, "protect", false, MsgFlagProtect)
	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)

	return cmd
}
