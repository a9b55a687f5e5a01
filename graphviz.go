package dfa

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the definition for
// visualization. Accepting states are drawn as double circles.
func (d *Definition) ToDOT() g.String { return d.toDOT(-1) }

// ToDOT generates a DOT language string representation of the automaton,
// with the current state highlighted.
func (a *Automaton) ToDOT() g.String { return a.def.toDOT(a.current) }

func (d *Definition) toDOT(current State) g.String {
	b := g.NewBuilder()

	b.WriteString("digraph DFA {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", int(initial)))

	for i := range d.table {
		state := State(i)

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", i))

		if d.IsAccepting(state) {
			attrs.Push("shape=doublecircle")
		}

		if state == current {
			attrs.Push("fillcolor=\"#90ee90\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", i, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	// One edge per (from, to) pair, labelled with every symbol that takes it.
	for i, row := range d.table {
		var targets g.Slice[State]
		labels := make(g.Map[State, g.Slice[g.String]])

		for _, symbol := range d.symbols {
			to := row[d.alphabet[symbol]]
			if _, seen := labels[to]; !seen {
				targets.Push(to)
			}

			labels[to] = append(labels[to], dotEscape(symbol))
		}

		for _, to := range targets {
			b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", i, int(to), labels[to].Join(", ")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}

func dotEscape(symbol rune) g.String {
	switch symbol {
	case '"', '\\':
		return g.String([]rune{'\\', symbol})
	default:
		return g.String(symbol)
	}
}
