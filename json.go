package dfa

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/enetx/g"
)

// Snapshot is a serializable representation of an automaton's cursor.
type Snapshot struct {
	Current State          `json:"current"`
	History g.Slice[State] `json:"history"`
}

// definitionJSON is the wire form of a Definition. Alphabet keys are
// one-symbol strings, since JSON object keys cannot be runes.
type definitionJSON struct {
	Alphabet    map[string]int `json:"alphabet"`
	Transitions [][]State      `json:"transitions"`
	Accepting   []State        `json:"accepting"`
}

// ParseAlphabet converts a string-keyed mapping, as found in JSON or YAML
// documents, into an Alphabet. Every key must be exactly one symbol.
func ParseAlphabet(m map[string]int) (Alphabet, error) {
	alphabet := make(Alphabet, len(m))

	for key, index := range m {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("alphabet key %q must be exactly one symbol", key)
		}

		symbol, _ := utf8.DecodeRuneInString(key)
		alphabet[symbol] = index
	}

	return alphabet, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d *Definition) MarshalJSON() ([]byte, error) {
	alphabet := make(map[string]int, len(d.alphabet))
	for symbol, index := range d.alphabet {
		alphabet[string(symbol)] = index
	}

	transitions := make([][]State, len(d.table))
	for i, row := range d.table {
		transitions[i] = row
	}

	accepting := []State(d.accepting)
	if accepting == nil {
		accepting = []State{}
	}

	return json.Marshal(definitionJSON{
		Alphabet:    alphabet,
		Transitions: transitions,
		Accepting:   accepting,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. The decoded
// definition goes through the same validation as Compile.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var raw definitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal dfa definition: %w", err)
	}

	alphabet, err := ParseAlphabet(raw.Alphabet)
	if err != nil {
		return err
	}

	table := make(Table, len(raw.Transitions))
	for i, row := range raw.Transitions {
		table[i] = row
	}

	compiled, err := Compile(alphabet, table, raw.Accepting...)
	if err != nil {
		return err
	}

	*d = *compiled

	return nil
}

// MarshalJSON implements the json.Marshaler interface. Only the cursor and
// the history are serialized; the definition is expected to be known to the
// side that restores the snapshot.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(Snapshot{
		Current: a.current,
		History: a.history.Clone(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. The receiver must
// already run over a definition, e.g. one created with Definition.NewAutomaton.
// A non-empty history must end at the current state.
func (a *Automaton) UnmarshalJSON(data []byte) error {
	if a.def == nil {
		return errors.New("cannot restore dfa state without a definition")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal dfa state: %w", err)
	}

	if !a.def.hasState(snapshot.Current) {
		return &ErrUnknownState{State: snapshot.Current}
	}

	for _, state := range snapshot.History {
		if !a.def.hasState(state) {
			return &ErrUnknownState{State: state}
		}
	}

	if len(snapshot.History) == 0 {
		snapshot.History = g.Slice[State]{snapshot.Current}
	}

	if last := snapshot.History[len(snapshot.History)-1]; last != snapshot.Current {
		return fmt.Errorf("dfa state history ends at %d, but current state is %d", last, snapshot.Current)
	}

	a.current = snapshot.Current
	a.history = snapshot.History

	return nil
}

func (d *Definition) hasState(s State) bool { return s >= 0 && int(s) < len(d.table) }
