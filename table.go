package dfa

import "github.com/enetx/g"

// TransitionTable renders the transition table, one row per state and one
// column per symbol in ascending order. Accepting rows are marked.
//
//	Transition Table:
//	----------------
//	State | 'a' | 'b' |
//	------|-----|-----|
//	  0   |  0  |  1  |
//	  1   |  0  |  1  | (accepting)
func (d *Definition) TransitionTable() g.String {
	b := g.NewBuilder()

	b.WriteString("Transition Table:\n")
	b.WriteString("----------------\n")

	b.WriteString("State |")
	for _, symbol := range d.symbols {
		b.WriteString(g.Format(" '{}' |", g.String(symbol)))
	}
	b.WriteByte('\n')

	b.WriteString("------|")
	for range d.symbols {
		b.WriteString("-----|")
	}
	b.WriteByte('\n')

	for i, row := range d.table {
		b.WriteString(g.Format("  {}   |", i))

		for _, symbol := range d.symbols {
			b.WriteString(g.Format("  {}  |", int(row[d.alphabet[symbol]])))
		}

		if d.IsAccepting(State(i)) {
			b.WriteString(" (accepting)")
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// TransitionTable renders the transition table of the automaton's definition.
func (a *Automaton) TransitionTable() g.String { return a.def.TransitionTable() }

// CurrentState describes the cursor, e.g. "Current state: 1 (accepting)".
func (a *Automaton) CurrentState() g.String {
	s := g.Format("Current state: {}", int(a.current))
	if a.IsInAcceptingState() {
		s += " (accepting)"
	}

	return s
}
