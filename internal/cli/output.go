package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/enetx/dfa"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a word was not accepted, or the definition is invalid
	ExitCommandError = 2 // the command could not run at all
)

// Error codes reported in JSON output.
const (
	ErrCodeUnknown    = "E000"
	ErrCodeNotFound   = "E001" // definition file missing or unreadable
	ErrCodeParse      = "E002" // not valid YAML
	ErrCodeSchema     = "E003" // missing or malformed fields
	ErrCodeDefinition = "E004" // automaton rejected by dfa.Compile
	ErrCodeInput      = "E005" // symbol outside the alphabet
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError formats a message into an ExitError.
func NewExitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapExitError attaches an exit code and context to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns the exit code for err: ExitSuccess for nil,
// the carried code for an ExitError and ExitFailure otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Response is the envelope written in --format json mode.
type Response struct {
	Status string   `json:"status"` // "ok" or "error"
	Data   any      `json:"data,omitempty"`
	Error  *Failure `json:"error,omitempty"`
}

// Failure describes a load or validation error in JSON output.
type Failure struct {
	Code    string `json:"code"`
	Kind    string `json:"kind,omitempty"` // dfa.ErrorKind, when the error came from package dfa
	Message string `json:"message"`
}

// printer writes command results as text or as a JSON Response.
type printer struct {
	json    bool
	verbose bool
	out     io.Writer
	diag    io.Writer
}

// result prints v; text mode relies on v's String method.
func (p *printer) result(v any) error {
	if p.json {
		return json.NewEncoder(p.out).Encode(Response{Status: "ok", Data: v})
	}

	_, err := fmt.Fprintln(p.out, v)
	return err
}

// failure prints err with its error code.
func (p *printer) failure(err error) {
	f := &Failure{Code: errorCode(err), Message: err.Error()}
	if kind := dfa.KindOf(err); kind != dfa.KindUnknown {
		f.Kind = kind.String()
	}

	if p.json {
		_ = json.NewEncoder(p.out).Encode(Response{Status: "error", Error: f})
		return
	}

	fmt.Fprintf(p.out, "Error [%s]: %s\n", f.Code, f.Message)
}

// debugf writes to the diagnostic stream in verbose mode, keeping JSON output clean.
func (p *printer) debugf(format string, args ...any) {
	if p.verbose {
		fmt.Fprintf(p.diag, format+"\n", args...)
	}
}
