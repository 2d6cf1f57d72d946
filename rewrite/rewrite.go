// Package rewrite normalizes a parsed formula into the subset spec.md
// section 3 requires after normalization (TRUE, FALSE, ATOM, NOT, X, U, AND,
// OR, IMPL) by propagating X inward to a fixed point and then eliminating
// R, W, G and F in favor of U, following the order in spec.md section 4.2.
package rewrite

import "github.com/exesaLigno/BuchiSolver/formula"

// Normalize rewrites root to the normal form required by the rest of the
// pipeline and reports whether the tree actually changed (used by the
// idempotence property in spec.md section 8: re-normalizing an
// already-normal formula must report false).
func Normalize(pool *formula.Pool, root *formula.Formula) (*formula.Formula, bool) {
	cur := root
	for {
		next := introduceX(pool, cur)
		if next.Equal(cur) {
			break
		}
		cur = next
	}
	cur = eliminateR(pool, cur)
	cur = eliminateW(pool, cur)
	cur = eliminateG(pool, cur)
	cur = eliminateF(pool, cur)
	return cur, !cur.Equal(root)
}

// introduceX performs one post-order pass of the inward-X rewrite described
// in spec.md section 4.2. X TRUE/FALSE collapse to the constant; X of a
// unary op commutes past it; X of a binary op distributes over both
// operands. X ATOM and X X ψ are left alone — they are the canonical Next
// forms that become free variables (automaton.Index's Atoms).
func introduceX(pool *formula.Pool, f *formula.Formula) *formula.Formula {
	if f == nil {
		return nil
	}

	left := introduceX(pool, f.Left())
	right := introduceX(pool, f.Right())
	f = rebuild(pool, f, left, right)

	if f.Kind() != formula.KindNext {
		return f
	}
	arg := f.Left()
	switch arg.Kind() {
	case formula.KindTrue:
		return pool.True()
	case formula.KindFalse:
		return pool.False()
	case formula.KindNot, formula.KindFinally, formula.KindGlobally:
		return introduceX(pool, pool.Unary(arg.Kind(), pool.Next(arg.Left())))
	case formula.KindAnd, formula.KindOr, formula.KindImpl, formula.KindUntil, formula.KindWeak, formula.KindRelease:
		return introduceX(pool, pool.Binary(arg.Kind(), pool.Next(arg.Left()), pool.Next(arg.Right())))
	default:
		// X ATOM, X X ψ: canonical, left untouched.
		return f
	}
}

// eliminateR rewrites ψ1 R ψ2 to NOT((NOT ψ1) U (NOT ψ2)), post-order,
// applied once over the whole tree.
func eliminateR(pool *formula.Pool, f *formula.Formula) *formula.Formula {
	if f == nil {
		return nil
	}
	left := eliminateR(pool, f.Left())
	right := eliminateR(pool, f.Right())
	f = rebuild(pool, f, left, right)
	if f.Kind() != formula.KindRelease {
		return f
	}
	return pool.Not(pool.Until(pool.Not(f.Left()), pool.Not(f.Right())))
}

// eliminateW rewrites ψ1 W ψ2 to (ψ1 U ψ2) OR (G ψ1). The fresh G is
// resolved by the next pass, eliminateG.
func eliminateW(pool *formula.Pool, f *formula.Formula) *formula.Formula {
	if f == nil {
		return nil
	}
	left := eliminateW(pool, f.Left())
	right := eliminateW(pool, f.Right())
	f = rebuild(pool, f, left, right)
	if f.Kind() != formula.KindWeak {
		return f
	}
	return pool.Or(pool.Until(f.Left(), f.Right()), pool.Globally(f.Left()))
}

// eliminateG rewrites G ψ to NOT(F(NOT ψ)). The fresh F is resolved by the
// next pass, eliminateF.
func eliminateG(pool *formula.Pool, f *formula.Formula) *formula.Formula {
	if f == nil {
		return nil
	}
	left := eliminateG(pool, f.Left())
	right := eliminateG(pool, f.Right())
	f = rebuild(pool, f, left, right)
	if f.Kind() != formula.KindGlobally {
		return f
	}
	return pool.Not(pool.Finally(pool.Not(f.Left())))
}

// eliminateF rewrites F ψ to TRUE U ψ. After this pass, F/G/R/W no longer
// appear anywhere in the tree.
func eliminateF(pool *formula.Pool, f *formula.Formula) *formula.Formula {
	if f == nil {
		return nil
	}
	left := eliminateF(pool, f.Left())
	right := eliminateF(pool, f.Right())
	f = rebuild(pool, f, left, right)
	if f.Kind() != formula.KindFinally {
		return f
	}
	return pool.Until(pool.True(), f.Left())
}

// rebuild re-interns f with its (possibly rewritten) children, short
// circuiting when nothing changed.
func rebuild(pool *formula.Pool, f *formula.Formula, left, right *formula.Formula) *formula.Formula {
	if left.Equal(f.Left()) && right.Equal(f.Right()) {
		return f
	}
	switch {
	case f.Kind().IsUnary():
		return pool.Unary(f.Kind(), left)
	case f.Kind().IsBinary():
		return pool.Binary(f.Kind(), left, right)
	default:
		return f
	}
}
