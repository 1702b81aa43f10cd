// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lexer splits an expression into tokens. It works on runes so the keypad
// glyphs (×, ÷, −, π, √) can be used directly.
type lexer struct {
	src []rune
	i   int
}

func newLexer(s string) *lexer {
	return &lexer{src: []rune(s)}
}

func (l *lexer) next() (token, error) {
	for l.i < len(l.src) && unicode.IsSpace(l.src[l.i]) {
		l.i++
	}
	if l.i >= len(l.src) {
		return token{kind: tokEOF, pos: l.i}, nil
	}

	pos := l.i
	ch := l.src[l.i]
	switch ch {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: pos}, nil
	case '-', '−':
		l.i++
		return token{kind: tokMinus, text: "-", pos: pos}, nil
	case '*', '×':
		l.i++
		if ch == '*' && l.i < len(l.src) && l.src[l.i] == '*' {
			l.i++
			return token{kind: tokCaret, text: "**", pos: pos}, nil
		}
		return token{kind: tokStar, text: "*", pos: pos}, nil
	case '/', '÷':
		l.i++
		return token{kind: tokSlash, text: "/", pos: pos}, nil
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^", pos: pos}, nil
	case '(':
		l.i++
		return token{kind: tokLParen, text: "(", pos: pos}, nil
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")", pos: pos}, nil
	case ',':
		l.i++
		return token{kind: tokComma, text: ",", pos: pos}, nil
	case 'π':
		l.i++
		return token{kind: tokIdent, text: "pi", pos: pos}, nil
	case '√':
		l.i++
		return token{kind: tokIdent, text: "sqrt", pos: pos}, nil
	}

	if isIdentStart(ch) {
		l.i++
		for l.i < len(l.src) && isIdentContinue(l.src[l.i]) {
			l.i++
		}
		return token{kind: tokIdent, text: string(l.src[pos:l.i]), pos: pos}, nil
	}

	if ch == '.' || isDigit(ch) {
		l.i = scanNumber(l.src, l.i)
		txt := string(l.src[pos:l.i])
		n, err := strconv.ParseFloat(txt, 64)
		if err != nil || txt == "." {
			return token{}, fail(ErrSyntax, pos, "invalid number %q", txt)
		}
		return token{kind: tokNumber, text: txt, num: n, pos: pos}, nil
	}

	return token{}, fail(ErrSyntax, pos, "unexpected character %q", ch)
}

// scanNumber returns the index just past the number literal starting at i.
// An exponent is only consumed when digits follow it, so "2e" lexes as the
// number 2 followed by the identifier e.
func scanNumber(s []rune, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
