package parser

import (
	"fmt"

	"github.com/exesaLigno/BuchiSolver/errs"
)

type tokenKind int

const (
	tokenAtom tokenKind = iota
	tokenTrue
	tokenFalse
	tokenNot
	tokenNext
	tokenFinally
	tokenGlobally
	tokenAnd
	tokenOr
	tokenUntil
	tokenRelease
	tokenWeak
	tokenImpl
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// lexer scans the zero-terminated ASCII prefix grammar of spec.md section
// 4.1 one token at a time. It never buffers more than the single pending
// token the parser peeks.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []byte(src)}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, offset: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '(':
		l.pos++
		return token{kind: tokenLParen, offset: start, text: "("}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenRParen, offset: start, text: ")"}, nil
	case c == '!':
		l.pos++
		return token{kind: tokenNot, offset: start, text: "!"}, nil
	case c == 'X':
		l.pos++
		return token{kind: tokenNext, offset: start, text: "X"}, nil
	case c == 'F':
		l.pos++
		return token{kind: tokenFinally, offset: start, text: "F"}, nil
	case c == 'G':
		l.pos++
		return token{kind: tokenGlobally, offset: start, text: "G"}, nil
	case c == '&':
		l.pos++
		return token{kind: tokenAnd, offset: start, text: "&"}, nil
	case c == '|':
		l.pos++
		return token{kind: tokenOr, offset: start, text: "|"}, nil
	case c == 'U':
		l.pos++
		return token{kind: tokenUntil, offset: start, text: "U"}, nil
	case c == 'R':
		l.pos++
		return token{kind: tokenRelease, offset: start, text: "R"}, nil
	case c == 'W':
		l.pos++
		return token{kind: tokenWeak, offset: start, text: "W"}, nil
	case c == '-':
		if l.pos+1 >= len(l.src) || l.src[l.pos+1] != '>' {
			return token{}, &errs.ParseError{Offset: start, Token: "-", Msg: "'-' must be followed by '>'"}
		}
		l.pos += 2
		return token{kind: tokenImpl, offset: start, text: "->"}, nil
	case isLower(c):
		end := l.pos
		for end < len(l.src) && isLower(l.src[end]) {
			end++
		}
		name := string(l.src[start:end])
		l.pos = end
		switch name {
		case "true":
			return token{kind: tokenTrue, offset: start, text: name}, nil
		case "false":
			return token{kind: tokenFalse, offset: start, text: name}, nil
		default:
			return token{kind: tokenAtom, offset: start, text: name}, nil
		}
	default:
		return token{}, &errs.ParseError{Offset: start, Token: fmt.Sprintf("%c", c), Msg: "unexpected character"}
	}
}
