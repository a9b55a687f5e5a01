package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/enetx/dfa"
)

// DefinitionFile is the on-disk form of an automaton.
type DefinitionFile struct {
	Name        string         `yaml:"name" json:"name" validate:"omitempty,max=64"`
	Summary     string         `yaml:"summary,omitempty" json:"summary,omitempty" validate:"max=200"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Alphabet    map[string]int `yaml:"alphabet" json:"alphabet" validate:"required,min=1,dive,keys,len=1,endkeys"`
	Transitions [][]dfa.State  `yaml:"transitions" json:"transitions" validate:"required"`
	Accepting   []dfa.State    `yaml:"accepting" json:"accepting"`
}

// LoadError represents an error that occurred while loading a definition.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultDefinitionFile is the automaton used when no file is given:
// words over {a, b} that end with 'b'.
func DefaultDefinitionFile() *DefinitionFile {
	return &DefinitionFile{
		Name:        "ends-with-b",
		Summary:     "accepts strings ending with 'b'",
		Description: "This automaton accepts strings containing only 'a' and 'b' that end with 'b'.",
		Alphabet:    map[string]int{"a": 0, "b": 1},
		Transitions: [][]dfa.State{{0, 1}, {0, 1}},
		Accepting:   []dfa.State{1},
	}
}

// LoadDefinitionFile reads and schema-checks a YAML definition file.
func LoadDefinitionFile(path string) (*DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "cannot read definition file", Err: err}
	}

	f, err := ParseDefinitionFile(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}

	return f, nil
}

// ParseDefinitionFile decodes a YAML definition. Unknown fields are rejected.
func ParseDefinitionFile(data []byte) (*DefinitionFile, error) {
	var f DefinitionFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: "invalid YAML", Err: err}
	}

	if err := validate.Struct(&f); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: "invalid definition file", Err: err}
	}

	return &f, nil
}

// Compile validates the automaton described by the file.
func (f *DefinitionFile) Compile() (*dfa.Definition, error) {
	alphabet, err := dfa.ParseAlphabet(f.Alphabet)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: "invalid alphabet", Err: err}
	}

	table := make(dfa.Table, len(f.Transitions))
	for i, row := range f.Transitions {
		table[i] = row
	}

	return dfa.Compile(alphabet, table, f.Accepting...)
}

// Heading is the first line printed by the run command.
func (f *DefinitionFile) Heading() string {
	if f.Summary == "" {
		return fmt.Sprintf("DFA %s:", f.Title())
	}
	return fmt.Sprintf("DFA that %s:", f.Summary)
}

// Title names the automaton for display.
func (f *DefinitionFile) Title() string {
	if f.Name == "" {
		return "unnamed"
	}
	return f.Name
}

// loadDefinition resolves the --file flag into a compiled definition.
func loadDefinition(opts *RootOptions) (*DefinitionFile, *dfa.Definition, error) {
	f := DefaultDefinitionFile()

	if opts.File != "" {
		loaded, err := LoadDefinitionFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		f = loaded
	}

	def, err := f.Compile()
	if err != nil {
		return f, nil, err
	}

	return f, def, nil
}

// errorCode maps a load or compile error to its JSON error code.
func errorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}

	switch {
	case dfa.IsValidationError(err):
		return ErrCodeDefinition
	case dfa.KindOf(err) == dfa.KindInvalidSymbol:
		return ErrCodeInput
	default:
		return ErrCodeUnknown
	}
}
