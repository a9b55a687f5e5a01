package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/enetx/g"
	"github.com/spf13/cobra"

	"github.com/enetx/dfa"
)

// CheckResult is the outcome of reading one word.
type CheckResult struct {
	Input      string    `json:"input"`
	Accepted   bool      `json:"accepted"`
	State      dfa.State `json:"state"`
	Kind       string    `json:"kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// CheckReport is the outcome of a check run, one result per word.
type CheckReport []CheckResult

// String renders the report as one line per word.
func (r CheckReport) String() string {
	var b strings.Builder

	for i, res := range r {
		if i > 0 {
			b.WriteByte('\n')
		}

		switch {
		case res.Error != "":
			fmt.Fprintf(&b, "invalid   %q  %s", res.Input, res.Error)
		case res.Accepted:
			fmt.Fprintf(&b, "accepted  %q  state=%d", res.Input, res.State)
		default:
			fmt.Fprintf(&b, "rejected  %q  state=%d", res.Input, res.State)
		}
	}

	return b.String()
}

// Failed counts the words that were rejected or invalid.
func (r CheckReport) Failed() int {
	n := 0
	for _, res := range r {
		if !res.Accepted {
			n++
		}
	}
	return n
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [word...]",
		Short: "Check words against the automaton",
		Long: `Read every word with a fresh cursor and report acceptance. Words come
from the arguments or, when there are none, one per line from stdin.

Exits with status 1 if any word is rejected or contains invalid symbols.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
}

func runCheck(opts *RootOptions, words []string, cmd *cobra.Command) error {
	p := opts.printer(cmd)

	_, def, err := loadDefinition(opts)
	if err != nil {
		p.failure(err)
		return WrapExitError(ExitCommandError, "failed to load definition", err)
	}

	if len(words) == 0 {
		if words, err = readWords(cmd.InOrStdin()); err != nil {
			return WrapExitError(ExitCommandError, "failed to read words", err)
		}
	}

	report := Check(def, words)

	p.debugf("checked %d words, %d failed", len(report), report.Failed())

	if err := p.result(report); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return NewExitError(ExitFailure, "%d of %d words not accepted", failed, len(report))
	}

	return nil
}

// Check reads every word from the initial state.
func Check(def *dfa.Definition, words []string) CheckReport {
	a := def.NewAutomaton()
	report := make(CheckReport, 0, len(words))

	for _, word := range words {
		accepted, err := a.Read(g.String(word))

		res := CheckResult{Input: word, Accepted: accepted, State: a.Current()}
		if err != nil {
			res.Kind = dfa.KindOf(err).String()
			res.Error = err.Error()

			var symErr *dfa.ErrInvalidSymbol
			if errors.As(err, &symErr) {
				res.Suggestion = string(symErr.Suggestion)
			}
		}

		report = append(report, res)
	}

	return report
}

func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	return words, scanner.Err()
}
