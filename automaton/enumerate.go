package automaton

import "github.com/exesaLigno/BuchiSolver/formula"

// EnumerateStates produces every leaf state — fully-determined truth vector
// over idx.All — reachable by assigning every free-variable mask over
// idx.Atoms and expanding the decision tree over any Until left Unknown
// (spec.md 4.4). reversed selects the mask-to-atom mapping
// Options.ReversedMask chooses: by default the last atom in idx.Atoms is the
// fastest-changing bit; reversed makes the first atom fastest-changing.
// Leaves are not deduplicated here; none is needed, since distinct masks
// differ in at least one preset Atoms position and so never reach the same
// truth vector.
func EnumerateStates(idx *Index, reversed bool) [][]Status {
	n := len(idx.Atoms)
	var states [][]Status
	for mask := 0; mask < 1<<uint(n); mask++ {
		vec := presetVector(idx, mask, reversed)
		enumerate(idx, vec, &states)
	}
	return states
}

// presetVector builds a vector with Atoms positions fixed according to mask
// and every other position Unknown.
func presetVector(idx *Index, mask int, reversed bool) []Status {
	vec := make([]Status, len(idx.All))
	n := len(idx.Atoms)
	for i, atom := range idx.Atoms {
		bit := bitFor(i, n, reversed)
		p := idx.Position(atom)
		if mask&(1<<uint(bit)) != 0 {
			vec[p] = True
		} else {
			vec[p] = False
		}
	}
	return vec
}

// bitFor reports which mask bit drives Atoms[i]. The default (non-reversed)
// order visits atoms from last to first, i.e. Atoms[n-1] is bit 0 and
// changes fastest; ReversedMask flips this so Atoms[0] is bit 0 instead.
// Either way the set of reachable states is the same — only the numbering
// (which mask produces which state first) differs, per spec.md's
// determinism property.
func bitFor(i, n int, reversed bool) int {
	if reversed {
		return i
	}
	return n - 1 - i
}

// calculate propagates forced statuses through vec bottom-up following the
// table in spec.md 4.4. Positions that already carry a preset status (the
// free-variable assignment, or a choice made earlier in the decision tree)
// are left untouched — a preset always wins over a derived value.
func calculate(idx *Index, vec []Status) {
	for p, f := range idx.All {
		if vec[p] != Unknown {
			continue
		}
		switch f.Kind() {
		case formula.KindTrue:
			vec[p] = True
		case formula.KindFalse:
			vec[p] = False
		case formula.KindAtom, formula.KindNext:
			// Free variables: derivable only from a preset, never computed.
		case formula.KindNot:
			switch vec[idx.Position(f.Left())] {
			case True:
				vec[p] = False
			case False:
				vec[p] = True
			}
		case formula.KindAnd:
			l, r := vec[idx.Position(f.Left())], vec[idx.Position(f.Right())]
			switch {
			case l == True && r == True:
				vec[p] = True
			case l == False || r == False:
				vec[p] = False
			}
		case formula.KindOr:
			l, r := vec[idx.Position(f.Left())], vec[idx.Position(f.Right())]
			switch {
			case l == True || r == True:
				vec[p] = True
			case l == False && r == False:
				vec[p] = False
			}
		case formula.KindImpl:
			l, r := vec[idx.Position(f.Left())], vec[idx.Position(f.Right())]
			switch {
			case l == False || r == True:
				vec[p] = True
			case l == True && r == False:
				vec[p] = False
			}
		case formula.KindUntil:
			l, r := vec[idx.Position(f.Left())], vec[idx.Position(f.Right())]
			switch {
			case r == True:
				vec[p] = True
			case l == False && r == False:
				vec[p] = False
			}
		case formula.KindFinally, formula.KindGlobally, formula.KindRelease, formula.KindWeak:
			panic("automaton: residual " + f.Kind().String() + " reached enumeration; normalize the formula first")
		}
	}
}

// enumerate runs calculate on vec, then recurses on the leftmost remaining
// Unknown (always an Until, by spec.md's invariant) by trying FALSE then
// TRUE, appending each fully-determined leaf it reaches to *states.
func enumerate(idx *Index, vec []Status, states *[][]Status) {
	calculate(idx, vec)

	i := -1
	for p, s := range vec {
		if s == Unknown {
			i = p
			break
		}
	}
	if i == -1 {
		leaf := make([]Status, len(vec))
		copy(leaf, vec)
		*states = append(*states, leaf)
		return
	}

	falseBranch := make([]Status, len(vec))
	copy(falseBranch, vec)
	falseBranch[i] = False
	enumerate(idx, falseBranch, states)

	trueBranch := make([]Status, len(vec))
	copy(trueBranch, vec)
	trueBranch[i] = True
	enumerate(idx, trueBranch, states)
}
