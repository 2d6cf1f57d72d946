package rewrite

import "github.com/exesaLigno/BuchiSolver/formula"

// ComputeDefinitions returns every Until subformula of root that has another
// Until somewhere among its ancestors, in the order first encountered by a
// top-down, left-to-right walk. These are the formulas buchi.cc's
// find_nested_untils flags for its Greek-letter shorthand in LaTeX output
// (report.LaTeX); spec.md's Design Notes permit computing this set by a
// plain ancestor-aware walk rather than reproducing that function's
// first-call/already-found bookkeeping.
func ComputeDefinitions(root *formula.Formula) []*formula.Formula {
	var defs []*formula.Formula
	seen := make(map[*formula.Formula]bool)
	var walk func(f *formula.Formula, underUntil bool)
	walk = func(f *formula.Formula, underUntil bool) {
		if f == nil {
			return
		}
		if f.Kind() == formula.KindUntil && underUntil && !seen[f] {
			seen[f] = true
			defs = append(defs, f)
		}
		nextUnderUntil := underUntil || f.Kind() == formula.KindUntil
		walk(f.Left(), nextUnderUntil)
		walk(f.Right(), nextUnderUntil)
	}
	walk(root, false)
	return defs
}
