package dfa

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State is a row index in the transition table. State 0 is always the initial state.
	State int

	// Alphabet maps every input symbol to its column in the transition table.
	Alphabet g.Map[rune, int]

	// Table is the transition function: row = current state, column = symbol index,
	// value = next state.
	Table g.Slice[g.Slice[State]]

	// StepHook is called after every successful transition, once per consumed symbol.
	StepHook func(from, to State, symbol rune)

	// Definition is the validated, immutable part of an automaton: the alphabet,
	// the transition table and the accepting states. It is never mutated after
	// Compile and may be shared freely between goroutines and automatons.
	Definition struct {
		alphabet  g.Map[rune, int]
		symbols   g.Slice[rune]
		table     g.Slice[g.Slice[State]]
		accepting g.Slice[State]
		accept    g.Set[State]
	}

	// Automaton is a single run over a Definition. It owns the cursor
	// (the current state) and the states visited since the last reset.
	// An Automaton is not safe for concurrent use; see Sync.
	Automaton struct {
		def     *Definition
		current State
		history g.Slice[State]
		onStep  g.Slice[StepHook]
	}

	// SyncAutomaton is a thread-safe wrapper around an Automaton.
	// It protects all cursor-mutating and cursor-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncAutomaton struct {
		a  *Automaton
		mu sync.RWMutex
	}
)

// initial is the fixed start state of every automaton.
const initial State = 0
