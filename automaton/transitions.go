package automaton

import "github.com/exesaLigno/BuchiSolver/formula"

// ComputeInitial returns the indices of every state that satisfies the root
// formula (spec.md 4.5: I = { s : s[root] = TRUE }).
func ComputeInitial(idx *Index, root *formula.Formula, states [][]Status) []int {
	rootPos := idx.Position(root)
	var init []int
	for si, s := range states {
		if s[rootPos] == True {
			init = append(init, si)
		}
	}
	return init
}

// ComputeAcceptance emits one accepting set per temporal subformula in All,
// in All's order. For ψ = lhs OP rhs, rhs' is lhs when OP is F or G and rhs
// otherwise; a state belongs to A_ψ iff its value for ψ equals its value for
// rhs'. The engine tolerates residual F/G/R/W here (unlike calculate, which
// panics on them) so that acceptance sets can still be computed over a
// pre-normalization state set if one is ever built.
func ComputeAcceptance(idx *Index, states [][]Status) [][]int {
	var sets [][]int
	for p, f := range idx.All {
		if !f.Kind().IsTemporal() {
			continue
		}
		rhsPrime := f.Right()
		if f.Kind() == formula.KindFinally || f.Kind() == formula.KindGlobally {
			rhsPrime = f.Left()
		}
		rp := idx.Position(rhsPrime)

		var set []int
		for si, s := range states {
			if s[p] == s[rp] {
				set = append(set, si)
			}
		}
		sets = append(sets, set)
	}
	return sets
}

// ComputeTransitions adds from->to for every ordered pair of states that
// satisfies isConsistent.
func ComputeTransitions(idx *Index, states [][]Status, b *Builder) {
	for from := range states {
		for to := range states {
			if isConsistent(idx, states[from], states[to]) {
				b.AddTransition(from, to)
			}
		}
	}
}

// isConsistent implements spec.md 4.5's per-subformula transition predicate:
// every Until must be discharged now, vacuous, or propagate its obligation
// unchanged into to; every X φ must agree with φ's value in to.
func isConsistent(idx *Index, from, to []Status) bool {
	for p, f := range idx.All {
		switch f.Kind() {
		case formula.KindUntil:
			lpos, rpos := idx.Position(f.Left()), idx.Position(f.Right())
			psi, l, r := from[p], from[lpos], from[rpos]
			switch {
			case psi == True && r == True:
			case psi == False && l == False && r == False:
			case l == True && r == False && psi == to[p]:
			default:
				return false
			}
		case formula.KindNext:
			if from[p] != to[idx.Position(f.Left())] {
				return false
			}
		}
	}
	return true
}
