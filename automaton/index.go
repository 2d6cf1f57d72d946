// Package automaton enumerates the states of the generalized Büchi
// automaton for a normalized formula and assembles the final transition
// relation, grounded on the worklist/hashed-dedup automaton construction
// style of vartan's grammar/lr0.go and grammar/lexical/dfa/dfa.go.
package automaton

import "github.com/exesaLigno/BuchiSolver/formula"

// Index is the subformula vector All (post-order, structurally deduplicated)
// together with Atoms, the subsequence of All that is free — an ATOM leaf or
// a canonical X φ form whose truth cannot be derived from any other
// subformula within a single state.
type Index struct {
	All   []*formula.Formula
	Atoms []*formula.Formula
	pos   map[*formula.Formula]int
}

// BuildIndex walks root once and produces its Index. root must already be
// built through a single formula.Pool: structurally equal subformulas are
// then already pointer-identical, so a plain pointer set collapses the
// structural-equality dedup spec.md 4.3 asks for into the same walk (see
// formula's package doc and spec.md's Design Notes on interning).
func BuildIndex(root *formula.Formula) *Index {
	idx := &Index{pos: make(map[*formula.Formula]int)}
	seen := make(map[*formula.Formula]bool)

	var walk func(f *formula.Formula)
	walk = func(f *formula.Formula) {
		if f == nil || seen[f] {
			return
		}
		walk(f.Left())
		walk(f.Right())
		seen[f] = true
		idx.pos[f] = len(idx.All)
		idx.All = append(idx.All, f)
	}
	walk(root)

	for _, f := range idx.All {
		if f.Kind() == formula.KindAtom || f.Kind() == formula.KindNext {
			idx.Atoms = append(idx.Atoms, f)
		}
	}
	return idx
}

// Position returns f's index into All. f must be a member of the index
// (every subformula reachable from root is); callers outside this package
// should treat an unknown formula as a programmer error, not a recoverable
// condition.
func (idx *Index) Position(f *formula.Formula) int {
	p, ok := idx.pos[f]
	if !ok {
		panic("automaton: formula not present in index: " + f.String())
	}
	return p
}
