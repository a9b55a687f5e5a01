package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult summarizes a definition that passed validation.
// Failures are reported as a Failure instead.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Name    string `json:"name"`
	States  int    `json:"states"`
	Symbols int    `json:"symbols"`
}

func (r ValidationResult) String() string {
	return fmt.Sprintf("%s is valid: %d states, %d symbols", r.Name, r.States, r.Symbols)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a definition without running it",
		Long: `Load the definition file and run every construction check: alphabet
indices, table width, transition targets and accepting states. The first
violation is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(rootOpts, cmd)
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	p := opts.printer(cmd)

	f, def, err := loadDefinition(opts)
	if err != nil {
		p.failure(err)

		if f == nil {
			return WrapExitError(ExitCommandError, "failed to load definition", err)
		}
		return WrapExitError(ExitFailure, "definition is invalid", err)
	}

	p.debugf("alphabet: %s", symbolList(def))

	return p.result(ValidationResult{
		Valid:   true,
		Name:    f.Title(),
		States:  def.StateCount(),
		Symbols: len(def.Symbols()),
	})
}
