package formula

// Pool hash-conses Formula nodes: any two calls that would build
// structurally equal formulas return the same *Formula. Each translation
// owns exactly one Pool (spec.md section 5 — no shared mutable state between
// invocations), so a Pool must never be reused across unrelated calls to
// Translate.
type Pool struct {
	table map[string]*Formula
}

// NewPool returns an empty interning table.
func NewPool() *Pool {
	return &Pool{table: make(map[string]*Formula)}
}

func (p *Pool) intern(kind Kind, name string, left, right *Formula) *Formula {
	key := computeKey(kind, name, left, right)
	if existing, ok := p.table[key]; ok {
		return existing
	}
	f := &Formula{kind: kind, name: name, left: left, right: right, key: key}
	p.table[key] = f
	return f
}

// True returns the canonical TRUE constant.
func (p *Pool) True() *Formula { return p.intern(KindTrue, "", nil, nil) }

// False returns the canonical FALSE constant.
func (p *Pool) False() *Formula { return p.intern(KindFalse, "", nil, nil) }

// Atom returns the canonical atomic proposition named name.
func (p *Pool) Atom(name string) *Formula { return p.intern(KindAtom, name, nil, nil) }

// Unary builds a unary node of the given kind. kind must satisfy IsUnary.
func (p *Pool) Unary(kind Kind, operand *Formula) *Formula {
	if !kind.IsUnary() {
		panic("formula: Unary called with non-unary kind " + kind.String())
	}
	return p.intern(kind, "", operand, nil)
}

// Binary builds a binary node of the given kind. kind must satisfy IsBinary.
func (p *Pool) Binary(kind Kind, left, right *Formula) *Formula {
	if !kind.IsBinary() {
		panic("formula: Binary called with non-binary kind " + kind.String())
	}
	return p.intern(kind, "", left, right)
}

// Not, Next, Finally, Globally are convenience wrappers over Unary.
func (p *Pool) Not(f *Formula) *Formula      { return p.Unary(KindNot, f) }
func (p *Pool) Next(f *Formula) *Formula     { return p.Unary(KindNext, f) }
func (p *Pool) Finally(f *Formula) *Formula  { return p.Unary(KindFinally, f) }
func (p *Pool) Globally(f *Formula) *Formula { return p.Unary(KindGlobally, f) }

// And, Or, Impl, Until, Release, Weak are convenience wrappers over Binary.
func (p *Pool) And(l, r *Formula) *Formula     { return p.Binary(KindAnd, l, r) }
func (p *Pool) Or(l, r *Formula) *Formula      { return p.Binary(KindOr, l, r) }
func (p *Pool) Impl(l, r *Formula) *Formula    { return p.Binary(KindImpl, l, r) }
func (p *Pool) Until(l, r *Formula) *Formula   { return p.Binary(KindUntil, l, r) }
func (p *Pool) Release(l, r *Formula) *Formula { return p.Binary(KindRelease, l, r) }
func (p *Pool) Weak(l, r *Formula) *Formula    { return p.Binary(KindWeak, l, r) }
