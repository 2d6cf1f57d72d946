// Package parser lexes and parses the prefix LTL grammar of spec.md section
// 4.1 into a *formula.Formula, in the lexer/parser split and
// panic-to-recover error style of vartan/spec/grammar/parser.
package parser

import (
	"fmt"

	"github.com/exesaLigno/BuchiSolver/errs"
	"github.com/exesaLigno/BuchiSolver/formula"
)

// Parse reads text as a complete LTL formula and interns every node it
// builds through pool. On any grammar violation it returns a *errs.ParseError
// naming the offending offset.
func Parse(pool *formula.Pool, text string) (*formula.Formula, error) {
	p := &parser{lex: newLexer(text), pool: pool}
	return p.parse()
}

type parser struct {
	lex    *lexer
	pool   *formula.Pool
	peeked *token
	stack  []*formula.Formula
}

func (p *parser) parse() (f *formula.Formula, retErr error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*errs.ParseError)
			if !ok {
				panic(r)
			}
			retErr = pe
		}
	}()

	p.parseUntil(tokenEOF, -1)

	if len(p.stack) != 1 {
		t, _ := p.peek()
		p.fail(t.offset, "", "expected exactly one formula, got %d", len(p.stack))
	}
	return p.pop(), nil
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

func (p *parser) consume() token {
	t, err := p.peek()
	if err != nil {
		p.raise(err)
	}
	p.peeked = nil
	return t
}

func (p *parser) push(f *formula.Formula) { p.stack = append(p.stack, f) }

func (p *parser) pop() *formula.Formula {
	n := len(p.stack)
	f := p.stack[n-1]
	p.stack = p.stack[:n-1]
	return f
}

func (p *parser) raise(err error) {
	if pe, ok := err.(*errs.ParseError); ok {
		panic(pe)
	}
	panic(&errs.ParseError{Msg: err.Error()})
}

func (p *parser) fail(offset int, token string, format string, args ...interface{}) {
	panic(&errs.ParseError{Offset: offset, Token: token, Msg: fmt.Sprintf(format, args...)})
}

// parseUntil consumes terms, pushing each onto the shared stack, until it
// sees end; reaching EOF before end is a parse error. When end is
// tokenRParen it also verifies the group
// produced exactly one net formula, catching both empty "()" and
// multi-term trailing garbage inside a parenthesized group.
func (p *parser) parseUntil(end tokenKind, openOffset int) {
	base := len(p.stack)
	for {
		t, err := p.peek()
		if err != nil {
			p.raise(err)
		}
		if t.kind == end {
			break
		}
		if t.kind == tokenEOF {
			p.fail(t.offset, "", "unexpected end of input")
		}
		p.parseTerm()
	}
	p.consume() // the closing token itself (tokenEOF is a no-op sentinel; tokenRParen is real)

	if end == tokenRParen {
		switch len(p.stack) - base {
		case 0:
			p.fail(openOffset, "(", "empty parentheses")
		case 1:
			// exactly one term produced, as required
		default:
			p.fail(openOffset, "(", "more than one formula inside parentheses")
		}
	}
}

func (p *parser) parseTerm() {
	t := p.consume()
	switch t.kind {
	case tokenAtom:
		p.push(p.pool.Atom(t.text))
	case tokenTrue:
		p.push(p.pool.True())
	case tokenFalse:
		p.push(p.pool.False())
	case tokenNot:
		p.parseUnary(formula.KindNot)
	case tokenNext:
		p.parseUnary(formula.KindNext)
	case tokenFinally:
		p.parseUnary(formula.KindFinally)
	case tokenGlobally:
		p.parseUnary(formula.KindGlobally)
	case tokenAnd:
		p.parseBinary(formula.KindAnd)
	case tokenOr:
		p.parseBinary(formula.KindOr)
	case tokenUntil:
		p.parseBinary(formula.KindUntil)
	case tokenRelease:
		p.parseBinary(formula.KindRelease)
	case tokenWeak:
		p.parseBinary(formula.KindWeak)
	case tokenImpl:
		p.parseBinary(formula.KindImpl)
	case tokenLParen:
		p.parseUntil(tokenRParen, t.offset)
	case tokenRParen:
		p.fail(t.offset, ")", "unmatched ')'")
	case tokenEOF:
		p.fail(t.offset, "", "unexpected end of input")
	default:
		p.fail(t.offset, t.text, "unexpected token")
	}
}

func (p *parser) parseUnary(kind formula.Kind) {
	p.requireOperand(kind)
	p.parseTerm()
	operand := p.pop()
	p.push(p.pool.Unary(kind, operand))
}

func (p *parser) parseBinary(kind formula.Kind) {
	p.requireOperand(kind)
	p.parseTerm()
	lhs := p.pop()
	p.requireOperand(kind)
	p.parseTerm()
	rhs := p.pop()
	p.push(p.pool.Binary(kind, lhs, rhs))
}

// requireOperand fails early with a precise offset instead of the more
// confusing "unexpected end of input" a plain recursive call would produce
// several frames down for an operator with a missing operand.
func (p *parser) requireOperand(kind formula.Kind) {
	t, err := p.peek()
	if err != nil {
		p.raise(err)
	}
	if t.kind == tokenEOF || t.kind == tokenRParen {
		p.fail(t.offset, kind.String(), "operator %q is missing an operand", kind.String())
	}
}
