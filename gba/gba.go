// Package gba encodes and decodes the line-oriented ASCII automaton format
// of spec.md section 6, the serialized form the CLI's translate command
// writes. It is grounded on the original solver's Automaton::write_to, which
// emits one header line and one line per set.
package gba

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/exesaLigno/BuchiSolver/automaton"
)

// Encode writes a as:
//
//	N K
//	len(I) i0 i1 ...
//	len(A0) a...
//	...
//	len(A_{K-1}) a...
//	len(delta(0)) t...
//	...
//	len(delta(N-1)) t...
func Encode(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", a.StateCount(), a.AcceptingSetCount()); err != nil {
		return err
	}
	if err := writeSet(bw, a.Initial()); err != nil {
		return err
	}
	for i := 0; i < a.AcceptingSetCount(); i++ {
		if err := writeSet(bw, a.Accepting(i)); err != nil {
			return err
		}
	}
	for s := 0; s < a.StateCount(); s++ {
		if err := writeSet(bw, a.Transitions(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeSet(w *bufio.Writer, set []int) error {
	if _, err := fmt.Fprintf(w, "%d", len(set)); err != nil {
		return err
	}
	for _, v := range set {
		if _, err := fmt.Fprintf(w, " %d", v); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

// Decoded is a plain reconstruction of the lines Encode writes: it carries
// no Builder/Automaton invariants of its own (Decode never re-derives an
// automaton.Automaton, since a decoded file need not have come from this
// package's own Encode), only the raw sets in file order.
type Decoded struct {
	StateCount int
	Initial    []int
	Accepting  [][]int
	Adjacency  [][]int
}

// Decode parses the format Encode writes. Malformed input (wrong field
// counts, non-numeric tokens, truncated sets) returns an error; Decode does
// no consistency checking against the original automaton's semantics, only
// structural well-formedness of the text.
func Decode(r io.Reader) (*Decoded, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, err := readFields(sc, "header")
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("gba: header line must have 2 fields, got %d", len(header))
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("gba: bad state count %q: %w", header[0], err)
	}
	k, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("gba: bad accepting-set count %q: %w", header[1], err)
	}

	d := &Decoded{StateCount: n}
	d.Initial, err = readSet(sc, "initial set")
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		set, err := readSet(sc, fmt.Sprintf("accepting set %d", i))
		if err != nil {
			return nil, err
		}
		d.Accepting = append(d.Accepting, set)
	}
	for s := 0; s < n; s++ {
		adj, err := readSet(sc, fmt.Sprintf("adjacency list %d", s))
		if err != nil {
			return nil, err
		}
		d.Adjacency = append(d.Adjacency, adj)
	}
	return d, nil
}

func readFields(sc *bufio.Scanner, what string) ([]string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("gba: reading %s: %w", what, err)
		}
		return nil, fmt.Errorf("gba: unexpected end of input reading %s", what)
	}
	return strings.Fields(sc.Text()), nil
}

func readSet(sc *bufio.Scanner, what string) ([]int, error) {
	fields, err := readFields(sc, what)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("gba: %s missing its length field", what)
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("gba: %s has a non-numeric length %q: %w", what, fields[0], err)
	}
	if len(fields)-1 != count {
		return nil, fmt.Errorf("gba: %s declares %d entries but has %d", what, count, len(fields)-1)
	}
	set := make([]int, count)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("gba: %s entry %d is non-numeric %q: %w", what, i, f, err)
		}
		set[i] = v
	}
	return set, nil
}
