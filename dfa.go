// Package dfa provides a deterministic finite automaton built from a symbol
// alphabet, a transition table and a set of accepting states. A validated
// Definition is immutable and can be shared; each Automaton runs over a
// Definition with its own cursor. It is built with types and utilities from
// the github.com/enetx/g library.
package dfa

import "github.com/enetx/g"

// New validates the inputs and returns an automaton positioned at state 0.
// See Compile for the validation rules.
func New(alphabet Alphabet, table Table, accepting ...State) (*Automaton, error) {
	d, err := Compile(alphabet, table, accepting...)
	if err != nil {
		return nil, err
	}

	return d.NewAutomaton(), nil
}

// MustNew is like New but panics if the inputs are invalid.
// It is meant for automatons written as literals.
func MustNew(alphabet Alphabet, table Table, accepting ...State) *Automaton {
	a, err := New(alphabet, table, accepting...)
	if err != nil {
		panic(err)
	}

	return a
}

// Clone creates a new automaton over the same definition, with the same step
// hooks, positioned at the initial state.
func (a *Automaton) Clone() *Automaton {
	c := a.def.NewAutomaton()
	c.onStep = a.onStep.Clone()

	return c
}

// Definition returns the immutable definition the automaton runs over.
func (a *Automaton) Definition() *Definition { return a.def }

// Current returns the automaton's current state.
func (a *Automaton) Current() State { return a.current }

// History returns a copy of the states visited since the last reset,
// starting with the initial state.
func (a *Automaton) History() g.Slice[State] { return a.history.Clone() }

// IsInAcceptingState reports whether the current state is accepting.
func (a *Automaton) IsInAcceptingState() bool { return a.def.IsAccepting(a.current) }

// Reset moves the cursor back to the initial state and clears the history.
func (a *Automaton) Reset() {
	a.current = initial
	a.history = g.Slice[State]{initial}
}

// OnStep registers a hook called after every transition.
func (a *Automaton) OnStep(hook StepHook) *Automaton {
	a.onStep.Push(hook)
	return a
}

// Read consumes input symbol by symbol and reports whether the automaton ends
// in an accepting state.
//
// By default the cursor is reset before reading. Read(input, false) continues
// from the current state instead, so a word can be fed in pieces.
//
// If a symbol is not in the alphabet, Read stops there and returns an
// *ErrInvalidSymbol. The cursor is left at the state reached before that
// symbol; call Reset before reusing the automaton for an unrelated word.
func (a *Automaton) Read(input g.String, reset ...bool) (bool, error) {
	if len(reset) == 0 || reset[0] {
		a.Reset()
	}

	if _, err := a.def.run(a.current, input, a.step); err != nil {
		return false, err
	}

	return a.IsInAcceptingState(), nil
}

// Step consumes a single symbol from the current state and returns the new state.
func (a *Automaton) Step(symbol rune) (State, error) {
	next, ok := a.def.Transition(a.current, symbol)
	if !ok {
		return a.current, &ErrInvalidSymbol{Symbol: symbol, Input: g.String(symbol)}
	}

	a.step(a.current, next, symbol)

	return next, nil
}

func (a *Automaton) step(from, to State, symbol rune) {
	a.current = to
	a.history.Push(to)

	for _, hook := range a.onStep {
		hook(from, to, symbol)
	}
}

// Sync wraps the automaton in a SyncAutomaton. The automaton must not be used
// directly afterwards.
func (a *Automaton) Sync() *SyncAutomaton { return &SyncAutomaton{a: a} }
