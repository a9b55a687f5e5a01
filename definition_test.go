package dfa_test

import (
	"errors"
	"testing"

	. "github.com/enetx/dfa"
	"github.com/enetx/g"
)

func TestCompile_Validation(t *testing.T) {
	tests := []struct {
		name      string
		alphabet  Alphabet
		table     Table
		accepting []State
		kind      ErrorKind
		message   string
	}{
		{
			name:      "negative alphabet index",
			alphabet:  Alphabet{'a': -1, 'b': 1},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{1},
			kind:      KindInvalidAlphabet,
			message:   "Alphabet values must be non-negative integers",
		},
		{
			name:      "alphabet index past the last column",
			alphabet:  Alphabet{'a': 0, 'b': 2},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{1},
			kind:      KindInvalidAlphabet,
			message:   "Alphabet index 2 for symbol 'b' is outside valid range [0, 1]",
		},
		{
			name:      "alphabet index shared by two symbols",
			alphabet:  Alphabet{'a': 0, 'b': 0},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{1},
			kind:      KindInvalidAlphabet,
			message:   "Alphabet index 0 is assigned to both 'a' and 'b'",
		},
		{
			name:     "empty table",
			alphabet: Alphabet{'a': 0, 'b': 1},
			table:    Table{},
			kind:     KindEmptyTransitionTable,
			message:  "Transition matrix cannot be empty",
		},
		{
			name:      "row narrower than the alphabet",
			alphabet:  Alphabet{'a': 0, 'b': 1, 'c': 2},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{1},
			kind:      KindRowWidthMismatch,
			message:   "Each state must have a transition for each alphabet symbol",
		},
		{
			name:      "transition past the last state",
			alphabet:  Alphabet{'a': 0, 'b': 1},
			table:     Table{{0, 1}, {1, 3}},
			accepting: []State{1},
			kind:      KindInvalidTransitionTarget,
			message:   "Transition to invalid state: 3 from state 1",
		},
		{
			name:      "negative transition",
			alphabet:  Alphabet{'a': 0, 'b': 1},
			table:     Table{{0, -1}, {1, 0}},
			accepting: []State{1},
			kind:      KindInvalidTransitionTarget,
			message:   "Transition to invalid state: -1 from state 0",
		},
		{
			name:      "accepting state past the last state",
			alphabet:  Alphabet{'a': 0, 'b': 1},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{2},
			kind:      KindAcceptingStateOutOfRange,
			message:   "Accepting state 2 is outside valid range [0, 1]",
		},
		{
			name:      "negative accepting state",
			alphabet:  Alphabet{'a': 0, 'b': 1},
			table:     Table{{0, 1}, {1, 0}},
			accepting: []State{0, -1},
			kind:      KindAcceptingStateOutOfRange,
			message:   "Accepting state -1 is outside valid range [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.alphabet, tt.table, tt.accepting...)
			assertError(t, err)
			assertTrue(t, a == nil)
			assertEqual(t, KindOf(err), tt.kind)
			assertTrue(t, IsValidationError(err))
			assertContains(t, err.Error(), tt.message)

			d, err := Compile(tt.alphabet, tt.table, tt.accepting...)
			assertError(t, err)
			assertTrue(t, d == nil)
		})
	}
}

func TestCompile_ValidationOrder(t *testing.T) {
	// Every input is broken; the alphabet is checked first.
	_, err := Compile(Alphabet{'a': -1}, Table{}, 7)
	assertEqual(t, KindOf(err), KindInvalidAlphabet)

	// Then the table.
	_, err = Compile(Alphabet{'a': 0}, Table{{0}, {0, 1}}, 7)
	assertEqual(t, KindOf(err), KindRowWidthMismatch)

	var widthErr *ErrRowWidthMismatch
	assertTrue(t, errors.As(err, &widthErr))
	assertEqual(t, widthErr.Row, State(1))
	assertEqual(t, widthErr.Width, 2)
	assertEqual(t, widthErr.Want, 1)

	// Accepting states last.
	_, err = Compile(Alphabet{'a': 0}, Table{{0}}, 7)

	var rangeErr *ErrAcceptingStateOutOfRange
	assertTrue(t, errors.As(err, &rangeErr))
	assertEqual(t, rangeErr.State, State(7))
	assertEqual(t, rangeErr.Max, State(0))
}

func TestCompile_ErrorFields(t *testing.T) {
	_, err := Compile(Alphabet{'a': 0, 'b': 1}, Table{{0, 1}, {0, 1}}, 2)

	var rangeErr *ErrAcceptingStateOutOfRange
	assertTrue(t, errors.As(err, &rangeErr))
	assertEqual(t, rangeErr.State, State(2))
	assertEqual(t, rangeErr.Max, State(1))

	_, err = Compile(Alphabet{'a': 0, 'b': 1}, Table{{0, 1}, {1, 3}})

	var targetErr *ErrInvalidTransitionTarget
	assertTrue(t, errors.As(err, &targetErr))
	assertEqual(t, targetErr.From, State(1))
	assertEqual(t, targetErr.Target, State(3))

	assertEqual(t, KindOf(errors.New("other")), KindUnknown)
	assertFalse(t, IsValidationError(&ErrInvalidSymbol{Symbol: 'x'}))
	assertEqual(t, KindRowWidthMismatch.String(), "RowWidthMismatch")
}

func TestCompile_CopiesInputs(t *testing.T) {
	alphabet := Alphabet{'a': 0, 'b': 1}
	table := Table{{0, 1}, {0, 1}}
	accepting := []State{1}

	d, err := Compile(alphabet, table, accepting...)
	assertNoError(t, err)

	alphabet['c'] = 2
	table[0][1] = 0
	accepting[0] = 0

	a := d.NewAutomaton()
	assertAccepts(t, a, "b", true)
	assertAccepts(t, a, "a", false)
	assertEqual(t, len(d.Alphabet()), 2)

	// Accessors hand out copies as well.
	d.Alphabet()['z'] = 9
	d.AcceptingStates()[0] = 0
	d.Symbols()[0] = 'z'
	assertEqual(t, len(d.Alphabet()), 2)
	assertEqual(t, d.AcceptingStates()[0], State(1))
	assertEqual(t, d.Symbols()[0], 'a')
}

func TestDefinition_Accessors(t *testing.T) {
	d, err := Compile(Alphabet{'b': 1, 'a': 0}, Table{{0, 1}, {0, 1}, {2, 2}}, 1, 2)
	assertNoError(t, err)

	assertEqual(t, d.StateCount(), 3)
	assertTrue(t, d.Symbols().Eq(g.SliceOf('a', 'b')))
	assertTrue(t, d.IsAccepting(1))
	assertTrue(t, d.IsAccepting(2))
	assertFalse(t, d.IsAccepting(0))

	next, ok := d.Transition(0, 'b')
	assertTrue(t, ok)
	assertEqual(t, next, State(1))

	_, ok = d.Transition(0, 'c')
	assertFalse(t, ok)

	_, ok = d.Transition(3, 'a')
	assertFalse(t, ok)
}

func TestDefinition_AcceptsLeavesRunsAlone(t *testing.T) {
	a := endsWithB()
	d := a.Definition()

	_, err := a.Read("b")
	assertNoError(t, err)

	accepted, err := d.Accepts("ba")
	assertNoError(t, err)
	assertFalse(t, accepted)
	assertEqual(t, a.Current(), State(1))

	_, err = d.Accepts("bx")
	assertEqual(t, KindOf(err), KindInvalidSymbol)
}
