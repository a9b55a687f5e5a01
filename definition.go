package dfa

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Compile validates the alphabet, the transition table and the accepting states,
// in that order, and returns the first violation found. On success the inputs are
// copied, so later changes to them do not affect the returned Definition.
//
// Alphabet indices must be a permutation of [0, len(alphabet)): every symbol owns
// exactly one column of the table.
func Compile(alphabet Alphabet, table Table, accepting ...State) (*Definition, error) {
	symbols := sortedSymbols(alphabet)

	if err := validateAlphabet(alphabet, symbols); err != nil {
		return nil, err
	}

	if err := validateTable(table, len(alphabet)); err != nil {
		return nil, err
	}

	if err := validateAccepting(accepting, State(len(table))); err != nil {
		return nil, err
	}

	d := &Definition{
		alphabet:  make(g.Map[rune, int], len(alphabet)),
		symbols:   symbols,
		table:     make(g.Slice[g.Slice[State]], len(table)),
		accepting: g.Slice[State](accepting).Clone(),
		accept:    g.NewSet[State](),
	}

	for symbol, index := range alphabet {
		d.alphabet[symbol] = index
	}

	for i, row := range table {
		d.table[i] = row.Clone()
	}

	for _, state := range accepting {
		d.accept.Insert(state)
	}

	return d, nil
}

func sortedSymbols(alphabet Alphabet) g.Slice[rune] {
	symbols := make(g.Slice[rune], 0, len(alphabet))
	for symbol := range alphabet {
		symbols = append(symbols, symbol)
	}

	symbols.SortBy(cmp.Cmp)

	return symbols
}

func validateAlphabet(alphabet Alphabet, symbols g.Slice[rune]) error {
	for _, symbol := range symbols {
		if index := alphabet[symbol]; index < 0 {
			return &ErrInvalidAlphabet{Symbol: symbol, Index: index, Size: len(alphabet)}
		}
	}

	owners := make(map[int]rune, len(alphabet))

	for _, symbol := range symbols {
		index := alphabet[symbol]
		if index >= len(alphabet) {
			return &ErrInvalidAlphabet{Symbol: symbol, Index: index, Size: len(alphabet)}
		}

		if owner, taken := owners[index]; taken {
			return &ErrInvalidAlphabet{
				Symbol:    symbol,
				Index:     index,
				Size:      len(alphabet),
				Duplicate: true,
				Conflict:  owner,
			}
		}

		owners[index] = symbol
	}

	return nil
}

func validateTable(table Table, width int) error {
	if len(table) == 0 {
		return &ErrEmptyTransitionTable{}
	}

	states := State(len(table))

	for i, row := range table {
		if len(row) != width {
			return &ErrRowWidthMismatch{Row: State(i), Width: len(row), Want: width}
		}

		for _, target := range row {
			if target < 0 || target >= states {
				return &ErrInvalidTransitionTarget{From: State(i), Target: target}
			}
		}
	}

	return nil
}

func validateAccepting(accepting []State, states State) error {
	for _, state := range accepting {
		if state < 0 || state >= states {
			return &ErrAcceptingStateOutOfRange{State: state, Max: states - 1}
		}
	}

	return nil
}

// NewAutomaton starts a new run over the definition, positioned at the initial state.
func (d *Definition) NewAutomaton() *Automaton {
	return &Automaton{
		def:     d,
		current: initial,
		history: g.Slice[State]{initial},
	}
}

// Alphabet returns a copy of the symbol to column mapping.
func (d *Definition) Alphabet() Alphabet {
	alphabet := make(Alphabet, len(d.alphabet))
	for symbol, index := range d.alphabet {
		alphabet[symbol] = index
	}

	return alphabet
}

// Symbols returns the alphabet symbols in ascending code point order.
func (d *Definition) Symbols() g.Slice[rune] { return d.symbols.Clone() }

// StateCount returns the number of states, i.e. the number of table rows.
func (d *Definition) StateCount() int { return len(d.table) }

// AcceptingStates returns the accepting states as they were given to Compile.
func (d *Definition) AcceptingStates() g.Slice[State] { return d.accepting.Clone() }

// IsAccepting reports whether s is an accepting state.
func (d *Definition) IsAccepting(s State) bool { return d.accept.Contains(s) }

// Transition returns the state reached from `from` on symbol. The boolean is
// false when from is not a state or symbol is not in the alphabet.
func (d *Definition) Transition(from State, symbol rune) (State, bool) {
	index, ok := d.alphabet[symbol]
	if !ok || from < 0 || int(from) >= len(d.table) {
		return 0, false
	}

	return d.table[from][index], true
}

// Accepts reports whether input is accepted, starting from the initial state.
// It does not touch the cursor of any automaton.
func (d *Definition) Accepts(input g.String) (bool, error) {
	final, err := d.run(initial, input, nil)
	if err != nil {
		return false, err
	}

	return d.IsAccepting(final), nil
}

// run consumes input from the given state and returns the last state reached.
// On an invalid symbol it stops and returns the state reached before it.
func (d *Definition) run(from State, input g.String, step func(from, to State, symbol rune)) (State, error) {
	current := from

	for pos, symbol := range input {
		index, ok := d.alphabet[symbol]
		if !ok {
			return current, &ErrInvalidSymbol{
				Symbol:     symbol,
				Position:   pos,
				Input:      input,
				Suggestion: d.suggest(input),
			}
		}

		next := d.table[current][index]
		if step != nil {
			step(current, next, symbol)
		}

		current = next
	}

	return current, nil
}

// suggest drops every symbol of input that is not in the alphabet.
func (d *Definition) suggest(input g.String) g.String {
	kept := make([]rune, 0, len(input))

	for _, symbol := range input {
		if _, ok := d.alphabet[symbol]; ok {
			kept = append(kept, symbol)
		}
	}

	return g.String(kept)
}
