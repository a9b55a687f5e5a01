package dfa

import "github.com/enetx/g"

// Interface compliance check.
var _ Reader = (*SyncAutomaton)(nil)

// Read is the thread-safe version of Automaton.Read.
// The whole input is consumed atomically: no other goroutine observes or
// moves the cursor halfway through a word.
func (sa *SyncAutomaton) Read(input g.String, reset ...bool) (bool, error) {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	return sa.a.Read(input, reset...)
}

// Step is the thread-safe version of Automaton.Step.
func (sa *SyncAutomaton) Step(symbol rune) (State, error) {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	return sa.a.Step(symbol)
}

// Reset is the thread-safe version of Automaton.Reset.
func (sa *SyncAutomaton) Reset() {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	sa.a.Reset()
}

// Current is the thread-safe version of Automaton.Current.
func (sa *SyncAutomaton) Current() State {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.Current()
}

// IsInAcceptingState is the thread-safe version of Automaton.IsInAcceptingState.
func (sa *SyncAutomaton) IsInAcceptingState() bool {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.IsInAcceptingState()
}

// History is the thread-safe version of Automaton.History.
func (sa *SyncAutomaton) History() g.Slice[State] {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.History()
}

// Definition returns the immutable definition. It needs no locking.
func (sa *SyncAutomaton) Definition() *Definition { return sa.a.Definition() }

// CurrentState is the thread-safe version of Automaton.CurrentState.
func (sa *SyncAutomaton) CurrentState() g.String {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.CurrentState()
}

// TransitionTable renders the transition table. It needs no locking.
func (sa *SyncAutomaton) TransitionTable() g.String { return sa.a.TransitionTable() }

// ToDOT is the thread-safe version of Automaton.ToDOT.
func (sa *SyncAutomaton) ToDOT() g.String {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the automaton's cursor.
func (sa *SyncAutomaton) MarshalJSON() ([]byte, error) {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	return sa.a.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of the automaton's cursor.
func (sa *SyncAutomaton) UnmarshalJSON(data []byte) error {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	return sa.a.UnmarshalJSON(data)
}
