package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the transition table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := rootOpts.printer(cmd)

			_, def, err := loadDefinition(rootOpts)
			if err != nil {
				p.failure(err)
				return WrapExitError(ExitCommandError, "failed to load definition", err)
			}

			if p.json {
				return p.result(def)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), def.TransitionTable())
			return err
		},
	}
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the automaton as a Graphviz DOT graph",
		Long:  "Print the automaton in DOT format. Render it with: dfa dot | dot -Tpng -o dfa.png",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, def, err := loadDefinition(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load definition", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), def.ToDOT())
			return err
		},
	}
}
