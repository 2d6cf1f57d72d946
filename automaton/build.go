package automaton

import "github.com/exesaLigno/BuchiSolver/formula"

// Assemble derives the initial set, the accepting sets, and the transition
// relation from an already-enumerated state set and returns the finished
// Automaton. Callers that already hold idx and states (as package ltlgba
// does, to share them with its Result) should call this directly instead of
// Build, which re-enumerates from scratch.
func Assemble(idx *Index, root *formula.Formula, states [][]Status) *Automaton {
	acceptingSets := ComputeAcceptance(idx, states)
	b := NewBuilder(len(states), len(acceptingSets))

	for _, s := range ComputeInitial(idx, root, states) {
		b.MarkInitial(s)
	}
	for set, members := range acceptingSets {
		for _, s := range members {
			b.MarkAccepting(set, s)
		}
	}
	ComputeTransitions(idx, states, b)

	return b.Finalize()
}

// Build is a convenience wrapper for callers (tests, in this package) that
// don't already have an Index and state set on hand: it builds both from
// scratch and returns them alongside the Automaton.
func Build(root *formula.Formula, reversed bool) (*Automaton, *Index, [][]Status) {
	idx := BuildIndex(root)
	states := EnumerateStates(idx, reversed)
	return Assemble(idx, root, states), idx, states
}
