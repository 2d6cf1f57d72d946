// Package report renders Graphviz and LaTeX presentations of a translation
// result. None of it is part of the core contract (spec.md section 6 calls
// it an external collaborator); it exists purely to give the CLI something
// to write to ltl_before_transform.dot, ltl_after_transform.dot,
// automaton.dot and a LaTeX derivation file, the way the original solver's
// write_graph_to and to_latex_string did.
package report

import (
	"fmt"
	"io"

	"github.com/exesaLigno/BuchiSolver/automaton"
	"github.com/exesaLigno/BuchiSolver/formula"
)

// Formula writes f as a Graphviz digraph: one node per distinct subformula,
// one edge per parent/child link.
func Formula(w io.Writer, f *formula.Formula) error {
	fmt.Fprintln(w, "digraph formula {")
	ids := make(map[*formula.Formula]int)
	var walk func(n *formula.Formula) int
	walk = func(n *formula.Formula) int {
		if id, ok := ids[n]; ok {
			return id
		}
		id := len(ids)
		ids[n] = id
		label := n.Kind().String()
		if n.Kind() == formula.KindAtom {
			label = n.Name()
		}
		fmt.Fprintf(w, "  n%d [label=%q];\n", id, label)
		if n.Left() != nil {
			childID := walk(n.Left())
			fmt.Fprintf(w, "  n%d -> n%d;\n", id, childID)
		}
		if n.Right() != nil {
			childID := walk(n.Right())
			fmt.Fprintf(w, "  n%d -> n%d;\n", id, childID)
		}
		return id
	}
	walk(f)
	fmt.Fprintln(w, "}")
	return nil
}

// Automaton writes a as a Graphviz digraph. Accepting states (those
// belonging to at least one accepting set) are drawn with peripheries=2,
// the conventional Büchi double-circle; initial states get an unlabeled
// incoming arrow from a synthetic "start" point, matching the original
// solver's write_graph_to.
func Automaton(w io.Writer, a *automaton.Automaton) error {
	fmt.Fprintln(w, "digraph automaton {")
	fmt.Fprintln(w, "  rankdir=LR;")

	accepting := make(map[int]bool)
	for i := 0; i < a.AcceptingSetCount(); i++ {
		for _, s := range a.Accepting(i) {
			accepting[s] = true
		}
	}

	for s := 0; s < a.StateCount(); s++ {
		shape := "circle"
		peripheries := 1
		if accepting[s] {
			peripheries = 2
		}
		fmt.Fprintf(w, "  s%d [shape=%s, peripheries=%d, label=\"%d\"];\n", s, shape, peripheries, s)
	}
	fmt.Fprintln(w, `  start [shape=point];`)
	for _, s := range a.Initial() {
		fmt.Fprintf(w, "  start -> s%d;\n", s)
	}
	for s := 0; s < a.StateCount(); s++ {
		for _, t := range a.Transitions(s) {
			fmt.Fprintf(w, "  s%d -> s%d;\n", s, t)
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}
