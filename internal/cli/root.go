package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	File    string // definition file; the built-in ends-with-b automaton when empty
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	cmd := NewRootCommand()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)

	return cmd.ExecuteContext(ctx)
}

// NewRootCommand creates the root command for the dfa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dfa",
		Short: "dfa - deterministic finite automaton runner",
		Long: `Build a deterministic finite automaton from an alphabet, a transition
table and a set of accepting states, then test words against it.

Definitions are YAML files:

  name: ends-with-b
  alphabet: {a: 0, b: 1}
  transitions: [[0, 1], [0, 1]]
  accepting: [1]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, "invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			if opts.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "definition file (YAML)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// logger returns the process logger tagged with the running command.
func (o *RootOptions) logger(command string) zerolog.Logger {
	return log.With().Str("command", command).Logger()
}

// printer builds the output printer for a command.
func (o *RootOptions) printer(cmd *cobra.Command) *printer {
	return &printer{
		json:    o.Format == "json",
		verbose: o.Verbose,
		out:     cmd.OutOrStdout(),
		diag:    cmd.ErrOrStderr(),
	}
}
