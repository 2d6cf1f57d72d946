package parser

import (
	"testing"

	"github.com/exesaLigno/BuchiSolver/errs"
	"github.com/exesaLigno/BuchiSolver/formula"
)

func TestParseAccepts(t *testing.T) {
	cases := []struct {
		name string
		text string
		want func(p *formula.Pool) *formula.Formula
	}{
		{"atom", "a", func(p *formula.Pool) *formula.Formula { return p.Atom("a") }},
		{"true", "true", func(p *formula.Pool) *formula.Formula { return p.True() }},
		{"false", "false", func(p *formula.Pool) *formula.Formula { return p.False() }},
		{"not", "! a", func(p *formula.Pool) *formula.Formula { return p.Not(p.Atom("a")) }},
		{"next", "X a", func(p *formula.Pool) *formula.Formula { return p.Next(p.Atom("a")) }},
		{"finally", "F a", func(p *formula.Pool) *formula.Formula { return p.Finally(p.Atom("a")) }},
		{"globally", "G a", func(p *formula.Pool) *formula.Formula { return p.Globally(p.Atom("a")) }},
		{"and", "& a b", func(p *formula.Pool) *formula.Formula { return p.And(p.Atom("a"), p.Atom("b")) }},
		{"or", "| a b", func(p *formula.Pool) *formula.Formula { return p.Or(p.Atom("a"), p.Atom("b")) }},
		{"until", "U a b", func(p *formula.Pool) *formula.Formula { return p.Until(p.Atom("a"), p.Atom("b")) }},
		{"release", "R a b", func(p *formula.Pool) *formula.Formula { return p.Release(p.Atom("a"), p.Atom("b")) }},
		{"weak", "W a b", func(p *formula.Pool) *formula.Formula { return p.Weak(p.Atom("a"), p.Atom("b")) }},
		{"impl", "-> a b", func(p *formula.Pool) *formula.Formula { return p.Impl(p.Atom("a"), p.Atom("b")) }},
		{"paren", "(a)", func(p *formula.Pool) *formula.Formula { return p.Atom("a") }},
		{
			"impl operand order preserved",
			"-> (G a) (F b)",
			func(p *formula.Pool) *formula.Formula {
				return p.Impl(p.Globally(p.Atom("a")), p.Finally(p.Atom("b")))
			},
		},
		{
			"until operand order preserved",
			"U a b",
			func(p *formula.Pool) *formula.Formula {
				// a U b must keep a as the left operand, not b.
				return p.Until(p.Atom("a"), p.Atom("b"))
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := formula.NewPool()
			got, err := Parse(pool, c.text)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", c.text, err)
			}
			want := c.want(pool)
			if !got.Equal(want) {
				t.Fatalf("Parse(%q) = %s, want %s", c.text, got, want)
			}
		})
	}
}

func TestParseBinaryDoesNotSwapOperands(t *testing.T) {
	pool := formula.NewPool()
	got, err := Parse(pool, "-> a b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Left().Name() != "a" || got.Right().Name() != "b" {
		t.Fatalf("operand order swapped: left=%s right=%s", got.Left().Name(), got.Right().Name())
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"unmatched open paren", "(a"},
		{"unmatched close paren", "a)"},
		{"empty parens", "()"},
		{"multiple terms in parens", "(a b)"},
		{"dash without arrow", "- a b"},
		{"missing operand", "&"},
		{"missing second operand", "& a"},
		{"trailing garbage", "a b"},
		{"bad character", "a $ b"},
		{"uppercase atom rejected as operator garbage", "Z"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := formula.NewPool()
			_, err := Parse(pool, c.text)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", c.text)
			}
			if _, ok := err.(*errs.ParseError); !ok {
				t.Fatalf("Parse(%q) returned %T, want *errs.ParseError", c.text, err)
			}
		})
	}
}

func TestParseInterning(t *testing.T) {
	pool := formula.NewPool()
	a, err := Parse(pool, "& a a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Left() != a.Right() {
		t.Fatalf("expected interned pool to return identical pointers for equal atoms")
	}
}
