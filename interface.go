package dfa

import "github.com/enetx/g"

// Reader is the contract shared by Automaton and SyncAutomaton.
type Reader interface {
	Read(input g.String, reset ...bool) (bool, error)
	Step(symbol rune) (State, error)
	Reset()
	Current() State
	IsInAcceptingState() bool
	History() g.Slice[State]
	Definition() *Definition
	CurrentState() g.String
	TransitionTable() g.String
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance check.
var _ Reader = (*Automaton)(nil)
