// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import "strings"

type parser struct {
	l   *lexer
	cur token
}

// parse turns src into an expression tree.
func parse(src string) (node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &EvaluationError{Pos: -1, Err: ErrEmpty}
	}

	p := &parser{l: newLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return root, nil
}

func (p *parser) next() error {
	tok, err := p.l.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fail(ErrSyntax, p.cur.pos, "unexpected end of input")
	}
	return fail(ErrSyntax, p.cur.pos, "unexpected %q", p.cur.text)
}

func (p *parser) expect(kind tokenKind) error {
	if p.cur.kind != kind {
		if p.cur.kind == tokEOF {
			return fail(ErrSyntax, p.cur.pos, "expected %s", kind)
		}
		return fail(ErrSyntax, p.cur.pos, "expected %s, found %q", kind, p.cur.text)
	}
	return p.next()
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.text[0], left: left, right: right, pos: op.pos}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.text[0], left: left, right: right, pos: op.pos}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	pos := p.cur.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '^', left: base, right: exp, pos: pos}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		if err := p.next(); err != nil {
			return nil, err
		}
		return numberNode{v: v}, nil

	case tokIdent:
		ident := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokLParen {
			return identNode{name: ident.text, pos: ident.pos}, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		var args []node
		if p.cur.kind != tokRParen {
			for {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.cur.kind != tokComma {
					break
				}
				if err := p.next(); err != nil {
					return nil, err
				}
			}
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return callNode{name: ident.text, args: args, pos: ident.pos}, nil

	case tokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, p.unexpected()
	}
}
