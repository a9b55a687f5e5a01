package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/enetx/g"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/enetx/dfa"
)

// NewRunCommand creates the interactive run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Test words interactively",
		Long: `Print the transition table, then read one word per line and report
whether the automaton accepts it. Words with symbols outside the alphabet are
reported and the loop continues. Type 'quit', send EOF or interrupt to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context(), rootOpts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runInteractive(ctx context.Context, opts *RootOptions, in io.Reader, out io.Writer) error {
	file, def, err := loadDefinition(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load definition", err)
	}

	logger := opts.logger("run").With().
		Str("session", uuid.New().String()).
		Str("definition", file.Title()).
		Logger()

	a := def.NewAutomaton().OnStep(func(from, to dfa.State, symbol rune) {
		logger.Debug().Int("from", int(from)).Int("to", int(to)).Str("symbol", string(symbol)).Msg("step")
	})

	fmt.Fprintln(out, file.Heading())
	fmt.Fprint(out, a.TransitionTable())

	if file.Description != "" {
		fmt.Fprintf(out, "\n%s\n", file.Description)
	}

	lines := newLineReader(ctx, in)

	for ctx.Err() == nil {
		a.Reset()

		fmt.Fprint(out, "\nPlease enter a string (or 'quit' to exit): ")

		input, err := lines.next(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				break
			}
			return WrapExitError(ExitCommandError, "failed to read input", err)
		}

		if input == "quit" {
			break
		}

		accepted, err := a.Read(input)
		if err != nil {
			logger.Debug().Err(err).Stringer("kind", dfa.KindOf(err)).Msg("rejected input")
			fmt.Fprintf(out, "Invalid input: %v\n", err)
			fmt.Fprintf(out, "Please only use characters %s.\n", symbolList(def))
			continue
		}

		logger.Debug().Str("input", string(input)).Bool("accepted", accepted).Int("state", int(a.Current())).Msg("read")

		verdict := "REJECTED"
		if accepted {
			verdict = "ACCEPTED"
		}

		fmt.Fprintf(out, "Input is valid. The string '%s' is %s by the automaton.\n", input, verdict)
		fmt.Fprintln(out, a.CurrentState())
	}

	fmt.Fprintln(out, "\nGoodbye!")

	return nil
}

// symbolList renders the alphabet as "'a' and 'b'" or "'0', '1' and '2'".
func symbolList(def *dfa.Definition) g.String {
	var quoted g.Slice[g.String]
	for _, symbol := range def.Symbols() {
		quoted.Push(g.Format("'{}'", g.String(symbol)))
	}

	if len(quoted) < 2 {
		return quoted.Join(", ")
	}

	last := len(quoted) - 1

	return quoted[:last].Join(", ") + " and " + quoted[last]
}

// lineReader scans lines on its own goroutine, so that waiting for input
// does not block cancellation.
type lineReader struct {
	lines chan g.String
	err   error // set before lines is closed
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan g.String)}

	go func() {
		defer close(r.lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- g.String(strings.TrimSuffix(scanner.Text(), "\r")):
			case <-ctx.Done():
				return
			}
		}

		r.err = scanner.Err()
	}()

	return r
}

// next returns the next line. It returns io.EOF at the end of the input and
// the context's error once ctx is done.
func (r *lineReader) next(ctx context.Context) (g.String, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
