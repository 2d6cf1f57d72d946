package ltlgba

import (
	"fmt"
	"testing"

	"github.com/exesaLigno/BuchiSolver/automaton"
)

func TestTranslateNextA(t *testing.T) {
	res, err := Translate("X a", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Automaton.StateCount() != 4 {
		t.Fatalf("got %d states, want 4", res.Automaton.StateCount())
	}
	if len(res.Automaton.Initial()) != 2 {
		t.Fatalf("got %d initial states, want 2", len(res.Automaton.Initial()))
	}
	if res.Automaton.AcceptingSetCount() != 0 {
		t.Fatalf("got %d accepting sets, want 0", res.Automaton.AcceptingSetCount())
	}
}

func TestTranslateFinallyA(t *testing.T) {
	res, err := Translate("F a", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Automaton.AcceptingSetCount() != 1 {
		t.Fatalf("got %d accepting sets, want 1", res.Automaton.AcceptingSetCount())
	}
	if res.Automaton.StateCount() == 0 {
		t.Fatalf("got 0 states")
	}
}

func TestTranslateGloballyA(t *testing.T) {
	res, err := Translate("G a", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// G a normalizes to NOT (TRUE U (NOT a)); since the always-a word
	// satisfies it, at least one initial state must have a = TRUE.
	atomPos := -1
	for i, f := range res.Index.All {
		if f.Name() == "a" {
			atomPos = i
		}
	}
	if atomPos < 0 {
		t.Fatalf("atom a missing from index")
	}
	found := false
	for _, s := range res.Automaton.Initial() {
		if res.States[s][atomPos] == automaton.True {
			found = true
		}
	}
	if !found {
		t.Fatalf("no initial state has a = TRUE, but G a should be satisfiable by always-a")
	}
}

func TestTranslateUntilAB(t *testing.T) {
	res, err := Translate("U a b", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Masks over (a, b): (F,F)->psi=F, (F,T)->psi=T, (T,T)->psi=T each give
	// one leaf; (T,F) leaves l=True, r=False, which forces neither U
	// short-circuit rule, so psi stays UNKNOWN and the decision tree
	// branches into two leaves (T,F,F) and (T,F,T). Total: 5 states.
	if res.Automaton.StateCount() != 5 {
		t.Fatalf("got %d states, want 5", res.Automaton.StateCount())
	}
	if res.Automaton.AcceptingSetCount() != 1 {
		t.Fatalf("got %d accepting sets, want 1", res.Automaton.AcceptingSetCount())
	}

	var aPos, bPos, psiPos int
	for i, f := range res.Index.All {
		switch {
		case f.Name() == "a":
			aPos = i
		case f.Name() == "b":
			bPos = i
		case f == res.Normalized:
			psiPos = i
		}
	}

	pending := -1
	for s, states := range res.States {
		if states[aPos] == automaton.True && states[bPos] == automaton.False && states[psiPos] == automaton.False {
			pending = s
		}
	}
	if pending < 0 {
		t.Fatalf("expected state a=T,b=F,psi=F to exist among enumerated states")
	}
	// With a=T and b=F the Until is neither discharged nor vacuous, so psi=F
	// must propagate unchanged: the successors are exactly the psi=F states.
	var want []int
	for s, states := range res.States {
		if states[psiPos] == automaton.False {
			want = append(want, s)
		}
	}
	if got := res.Automaton.Transitions(pending); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("state %d (a=T,b=F,psi=F) successors = %v, want %v", pending, got, want)
	}
}

func TestTranslateImplication(t *testing.T) {
	res, err := Translate("-> (G a) (F b)", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Automaton.StateCount() == 0 {
		t.Fatalf("got 0 states")
	}
	if len(res.Automaton.Initial()) == 0 {
		t.Fatalf("expected at least one initial state")
	}
}

func TestTranslateDoubleNext(t *testing.T) {
	res, err := Translate("X X a", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Atoms is every ATOM leaf and every X subformula (spec.md section 3):
	// a itself, X a, and X X a.
	if len(res.Index.Atoms) != 3 {
		t.Fatalf("got %d atoms, want 3 (a, X a, X X a)", len(res.Index.Atoms))
	}
}

func TestTranslateParseError(t *testing.T) {
	_, err := Translate("& a", Options{})
	if err == nil {
		t.Fatalf("expected a parse error for an incomplete formula")
	}
}

func TestTranslateMaxStatesGuard(t *testing.T) {
	_, err := Translate("& a b", Options{MaxStates: 1})
	if err == nil {
		t.Fatalf("expected a TooLarge error")
	}
}

func TestTranslateReversedMaskSameStateCount(t *testing.T) {
	forward, err := Translate("& a b", Options{ReversedMask: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reversed, err := Translate("& a b", Options{ReversedMask: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forward.Automaton.StateCount() != reversed.Automaton.StateCount() {
		t.Fatalf("forward has %d states, reversed has %d", forward.Automaton.StateCount(), reversed.Automaton.StateCount())
	}
}
