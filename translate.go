// Package ltlgba is the library entry point: it wires the parser, rewriter,
// and automaton packages into the single Translate call spec.md section 6
// exposes, following vartan's grammar.Compile as the shape for a
// parse-then-build facade over an internal pipeline.
package ltlgba

import (
	"github.com/exesaLigno/BuchiSolver/automaton"
	"github.com/exesaLigno/BuchiSolver/errs"
	"github.com/exesaLigno/BuchiSolver/formula"
	"github.com/exesaLigno/BuchiSolver/parser"
	"github.com/exesaLigno/BuchiSolver/rewrite"
)

// Options configures one Translate call. The zero value is the documented
// default: ascending mask order, no state-count guard.
type Options struct {
	// ReversedMask flips the free-variable enumeration order described in
	// spec.md 4.4. It never changes the set of states produced, only their
	// numbering.
	ReversedMask bool

	// MaxStates, if non-zero, aborts translation with *errs.TooLarge when
	// enumeration has produced more states than this; the check runs after
	// enumeration and before any transition work. The core imposes no
	// limit of its own; this is purely an opt-in guard against the
	// exponential blowup spec.md 5 warns about.
	MaxStates int
}

// Result bundles the automaton together with the indexing and normalized
// formula that produced it, so presentation layers (package report, package
// gba) can render subformula-level detail without re-deriving it.
type Result struct {
	Parsed      *formula.Formula
	Automaton   *automaton.Automaton
	Normalized  *formula.Formula
	Index       *automaton.Index
	States      [][]automaton.Status
	Definitions []*formula.Formula
}

// Translate parses text, normalizes it, and builds the automaton that
// accepts exactly the infinite words satisfying it. Each call owns a fresh
// formula.Pool; no state is shared across calls (spec.md 5).
func Translate(text string, opts Options) (*Result, error) {
	pool := formula.NewPool()

	root, err := parser.Parse(pool, text)
	if err != nil {
		return nil, err
	}

	normalized, _ := rewrite.Normalize(pool, root)
	defs := rewrite.ComputeDefinitions(normalized)

	idx := automaton.BuildIndex(normalized)
	states := automaton.EnumerateStates(idx, opts.ReversedMask)
	if opts.MaxStates > 0 && len(states) > opts.MaxStates {
		return nil, &errs.TooLarge{StateCount: len(states), Max: opts.MaxStates}
	}

	auto := automaton.Assemble(idx, normalized, states)
	return &Result{
		Parsed:      root,
		Automaton:   auto,
		Normalized:  normalized,
		Index:       idx,
		States:      states,
		Definitions: defs,
	}, nil
}
