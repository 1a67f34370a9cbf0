package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/langgen/pkg/generator"
	"github.com/arthur-debert/langgen/pkg/templates"
)

func newPlanCmd() *cobra.Command {
	var (
		extensions   []string
		registration string
		parser       string
	)

	cmd := &cobra.Command{
		Use:   "plan <name>",
		Short: MsgPlanShort,
		Long:  MsgPlanLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parserStrategy, err := templates.ParseParserStrategy(parser)
			if err != nil {
				return err
			}
			registrationStrategy, err := templates.ParseRegistrationStrategy(registration)
			if err != nil {
				return err
			}

			paths, err := generator.Plan(args[0], extensions, parserStrategy, registrationStrategy)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, MsgFlagExtensions)
	cmd.Flags().StringVar(&registration, "registration", "centralized", MsgFlagRegistration)
	cmd.Flags().StringVar(&parser, "parser", "handwritten", MsgFlagParser)

	return cmd
}
