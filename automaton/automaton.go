package automaton

import "sort"

// Automaton is the immutable, queryable generalized Büchi automaton
// produced by Builder.Finalize.
type Automaton struct {
	n         int
	initial   []int
	accepting [][]int
	adjacency [][]int
}

// StateCount returns N, the number of states.
func (a *Automaton) StateCount() int { return a.n }

// Initial returns the sorted, duplicate-free set of initial state indices.
func (a *Automaton) Initial() []int { return a.initial }

// AcceptingSetCount returns K, the number of accepting sets.
func (a *Automaton) AcceptingSetCount() int { return len(a.accepting) }

// Accepting returns the sorted, duplicate-free i-th accepting set.
func (a *Automaton) Accepting(i int) []int { return a.accepting[i] }

// Transitions returns the sorted, duplicate-free successors of state s.
func (a *Automaton) Transitions(s int) []int { return a.adjacency[s] }

// Builder accumulates an automaton additively; nothing it exposes is
// queryable until Finalize sorts and deduplicates every set, matching
// spec.md 4.6's write-only-builder contract.
type Builder struct {
	n         int
	initial   []int
	accepting [][]int
	adjacency [][]int
}

// NewBuilder allocates a builder for a known state count and accepting-set
// family size.
func NewBuilder(stateCount, acceptingSetCount int) *Builder {
	return &Builder{
		n:         stateCount,
		accepting: make([][]int, acceptingSetCount),
		adjacency: make([][]int, stateCount),
	}
}

// AddTransition records src -> dst.
func (b *Builder) AddTransition(src, dst int) {
	b.adjacency[src] = append(b.adjacency[src], dst)
}

// MarkInitial records s as an initial state.
func (b *Builder) MarkInitial(s int) {
	b.initial = append(b.initial, s)
}

// MarkAccepting records s as a member of accepting set index set.
func (b *Builder) MarkAccepting(set, s int) {
	b.accepting[set] = append(b.accepting[set], s)
}

// Finalize sorts and uniquifies every adjacency list, accepting set, and the
// initial set, then returns the immutable Automaton.
func (b *Builder) Finalize() *Automaton {
	initial := sortUnique(b.initial)
	accepting := make([][]int, len(b.accepting))
	for i, set := range b.accepting {
		accepting[i] = sortUnique(set)
	}
	adjacency := make([][]int, len(b.adjacency))
	for i, adj := range b.adjacency {
		adjacency[i] = sortUnique(adj)
	}
	return &Automaton{n: b.n, initial: initial, accepting: accepting, adjacency: adjacency}
}

func sortUnique(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	sorted := make([]int, len(xs))
	copy(sorted, xs)
	sort.Ints(sorted)
	out := sorted[:1]
	for _, x := range sorted[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
