package dfa

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

// ErrorKind classifies every error produced by this package, so callers can
// branch on the kind of failure instead of matching message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidAlphabet
	KindEmptyTransitionTable
	KindRowWidthMismatch
	KindInvalidTransitionTarget
	KindAcceptingStateOutOfRange
	KindInvalidSymbol
	KindUnknownState
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidAlphabet:
		return "InvalidAlphabet"
	case KindEmptyTransitionTable:
		return "EmptyTransitionTable"
	case KindRowWidthMismatch:
		return "RowWidthMismatch"
	case KindInvalidTransitionTarget:
		return "InvalidTransitionTarget"
	case KindAcceptingStateOutOfRange:
		return "AcceptingStateOutOfRange"
	case KindInvalidSymbol:
		return "InvalidSymbol"
	case KindUnknownState:
		return "UnknownState"
	default:
		return "Unknown"
	}
}

// KindOf reports the ErrorKind of err, looking through wrapped errors.
// It returns KindUnknown for errors that did not originate in this package.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}

	return KindUnknown
}

// IsValidationError reports whether err is a construction-time validation failure.
func IsValidationError(err error) bool {
	switch KindOf(err) {
	case KindInvalidAlphabet, KindEmptyTransitionTable, KindRowWidthMismatch,
		KindInvalidTransitionTarget, KindAcceptingStateOutOfRange:
		return true
	default:
		return false
	}
}

// ErrInvalidAlphabet is returned by Compile when a symbol maps to a column that
// cannot exist: a negative index, an index past the last column, or an index
// already taken by another symbol (Duplicate, with the earlier owner in Conflict).
type ErrInvalidAlphabet struct {
	Symbol    rune
	Index     int
	Size      int
	Duplicate bool
	Conflict  rune
}

func (e *ErrInvalidAlphabet) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("Alphabet values must be non-negative integers: symbol '%c' maps to %d", e.Symbol, e.Index)
	case e.Duplicate:
		return fmt.Sprintf("Alphabet index %d is assigned to both '%c' and '%c'", e.Index, e.Conflict, e.Symbol)
	default:
		return fmt.Sprintf("Alphabet index %d for symbol '%c' is outside valid range [0, %d]",
			e.Index, e.Symbol, e.Size-1)
	}
}

func (*ErrInvalidAlphabet) Kind() ErrorKind { return KindInvalidAlphabet }

// ErrEmptyTransitionTable is returned by Compile when the table has no rows.
type ErrEmptyTransitionTable struct{}

func (*ErrEmptyTransitionTable) Error() string { return "Transition matrix cannot be empty" }

func (*ErrEmptyTransitionTable) Kind() ErrorKind { return KindEmptyTransitionTable }

// ErrRowWidthMismatch is returned by Compile when a state does not define
// exactly one transition per alphabet symbol.
type ErrRowWidthMismatch struct {
	Row   State
	Width int
	Want  int
}

func (e *ErrRowWidthMismatch) Error() string {
	return fmt.Sprintf("Each state must have a transition for each alphabet symbol: state %d has %d, want %d",
		e.Row, e.Width, e.Want)
}

func (*ErrRowWidthMismatch) Kind() ErrorKind { return KindRowWidthMismatch }

// ErrInvalidTransitionTarget is returned by Compile when a transition points
// outside the table.
type ErrInvalidTransitionTarget struct {
	From   State
	Target State
}

func (e *ErrInvalidTransitionTarget) Error() string {
	return fmt.Sprintf("Transition to invalid state: %d from state %d", e.Target, e.From)
}

func (*ErrInvalidTransitionTarget) Kind() ErrorKind { return KindInvalidTransitionTarget }

// ErrAcceptingStateOutOfRange is returned by Compile when an accepting state
// is not a row of the table. Max is the highest valid state.
type ErrAcceptingStateOutOfRange struct {
	State State
	Max   State
}

func (e *ErrAcceptingStateOutOfRange) Error() string {
	return fmt.Sprintf("Accepting state %d is outside valid range [0, %d]", e.State, e.Max)
}

func (*ErrAcceptingStateOutOfRange) Kind() ErrorKind { return KindAcceptingStateOutOfRange }

// ErrInvalidSymbol is returned by Read when the input contains a symbol outside
// the alphabet. Reading stops at the offending symbol; the cursor keeps the
// state reached so far.
//
// Suggestion is the input with every non-alphabet symbol removed. It is empty
// when the input holds no valid symbol at all.
type ErrInvalidSymbol struct {
	Symbol     rune
	Position   int // byte offset of Symbol in Input
	Input      g.String
	Suggestion g.String
}

func (e *ErrInvalidSymbol) Error() string {
	msg := fmt.Sprintf("Invalid input symbol: '%c'", e.Symbol)
	if e.Suggestion == "" {
		return msg + ". No valid characters found in input"
	}

	return msg + fmt.Sprintf(". Suggestion: Try '%s' instead", e.Suggestion)
}

func (*ErrInvalidSymbol) Kind() ErrorKind { return KindInvalidSymbol }

// ErrUnknownState is returned when restoring a snapshot that references a
// state the definition does not have.
type ErrUnknownState struct {
	State State
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("unknown state %d encountered during unmarshaling", e.State)
}

func (*ErrUnknownState) Kind() ErrorKind { return KindUnknownState }
