package rewrite

import (
	"testing"

	"github.com/exesaLigno/BuchiSolver/formula"
)

func TestNormalizeEliminatesHigherOperators(t *testing.T) {
	cases := []struct {
		name string
		f    func(p *formula.Pool) *formula.Formula
	}{
		{"finally", func(p *formula.Pool) *formula.Formula { return p.Finally(p.Atom("a")) }},
		{"globally", func(p *formula.Pool) *formula.Formula { return p.Globally(p.Atom("a")) }},
		{"release", func(p *formula.Pool) *formula.Formula { return p.Release(p.Atom("a"), p.Atom("b")) }},
		{"weak", func(p *formula.Pool) *formula.Formula { return p.Weak(p.Atom("a"), p.Atom("b")) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := formula.NewPool()
			root := c.f(pool)
			got, changed := Normalize(pool, root)
			if !changed {
				t.Fatalf("expected Normalize to report a change for %s", c.name)
			}
			if containsKind(got, formula.KindFinally) || containsKind(got, formula.KindGlobally) ||
				containsKind(got, formula.KindRelease) || containsKind(got, formula.KindWeak) {
				t.Fatalf("normalized formula %s still contains an eliminated operator", got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	pool := formula.NewPool()
	root := pool.Impl(pool.Globally(pool.Atom("a")), pool.Finally(pool.Atom("b")))

	once, changed := Normalize(pool, root)
	if !changed {
		t.Fatalf("expected first Normalize to change the formula")
	}
	twice, changedAgain := Normalize(pool, once)
	if changedAgain {
		t.Fatalf("re-normalizing an already-normal formula reported a change: %s -> %s", once, twice)
	}
	if !once.Equal(twice) {
		t.Fatalf("re-normalizing changed the formula: %s != %s", once, twice)
	}
}

func TestIntroduceXDistributesOverBinary(t *testing.T) {
	pool := formula.NewPool()
	root := pool.Next(pool.And(pool.Atom("a"), pool.Atom("b")))

	got, changed := Normalize(pool, root)
	if !changed {
		t.Fatalf("expected Normalize to change X(a & b)")
	}
	want := pool.And(pool.Next(pool.Atom("a")), pool.Next(pool.Atom("b")))
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestIntroduceXLeavesAtomAndDoubleNextAlone(t *testing.T) {
	pool := formula.NewPool()
	root := pool.Next(pool.Next(pool.Atom("a")))

	got, changed := Normalize(pool, root)
	if changed {
		t.Fatalf("X X a should already be normal, got change to %s", got)
	}
	if !got.Equal(root) {
		t.Fatalf("got %s, want %s", got, root)
	}
}

func TestComputeDefinitionsFindsNestedUntilsOnly(t *testing.T) {
	pool := formula.NewPool()
	inner := pool.Until(pool.Atom("a"), pool.Atom("b"))
	outer := pool.Until(inner, pool.Atom("c"))

	defs := ComputeDefinitions(outer)
	if len(defs) != 1 || !defs[0].Equal(inner) {
		t.Fatalf("got %v, want [%s]", defs, inner)
	}
}

func TestComputeDefinitionsEmptyForNonNestedUntil(t *testing.T) {
	pool := formula.NewPool()
	root := pool.Until(pool.Atom("a"), pool.Atom("b"))

	defs := ComputeDefinitions(root)
	if len(defs) != 0 {
		t.Fatalf("got %v, want none", defs)
	}
}

func containsKind(f *formula.Formula, k formula.Kind) bool {
	if f == nil {
		return false
	}
	if f.Kind() == k {
		return true
	}
	return containsKind(f.Left(), k) || containsKind(f.Right(), k)
}
