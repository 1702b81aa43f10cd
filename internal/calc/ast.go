// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"strconv"
	"strings"
)

// node is an evaluable expression tree node.
type node interface {
	eval() (float64, error)
	String() string
}

type numberNode struct {
	v float64
}

func (n numberNode) eval() (float64, error) { return n.v, nil }

func (n numberNode) String() string { return strconv.FormatFloat(n.v, 'g', -1, 64) }

type identNode struct {
	name string
	pos  int
}

func (n identNode) eval() (float64, error) {
	if v, ok := constants[n.name]; ok {
		return v, nil
	}
	if _, ok := builtins[n.name]; ok {
		return 0, fail(ErrSyntax, n.pos, "function %s needs an argument list", n.name)
	}
	return 0, fail(ErrUnknownIdentifier, n.pos, "%q", n.name)
}

func (n identNode) String() string { return n.name }

type unaryNode struct {
	op byte
	x  node
}

func (n unaryNode) eval() (float64, error) {
	v, err := n.x.eval()
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

func (n unaryNode) String() string { return "(" + string(n.op) + n.x.String() + ")" }

type binaryNode struct {
	op          byte
	left, right node
	pos         int
}

func (n binaryNode) eval() (float64, error) {
	a, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval()
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, fail(ErrDivisionByZero, n.pos, "%s / 0", Format(a))
		}
		return a / b, nil
	case '^':
		if a == 0 && b < 0 {
			return 0, fail(ErrDivisionByZero, n.pos, "0 cannot be raised to a negative power")
		}
		r := math.Pow(a, b)
		if math.IsNaN(r) {
			return 0, fail(ErrDomain, n.pos, "%s ^ %s", Format(a), Format(b))
		}
		return r, nil
	}
	return 0, fail(ErrSyntax, n.pos, "unknown operator %q", n.op)
}

func (n binaryNode) String() string {
	return "(" + n.left.String() + " " + string(n.op) + " " + n.right.String() + ")"
}

type callNode struct {
	name string
	args []node
	pos  int
}

func (n callNode) eval() (float64, error) {
	fn, ok := builtins[n.name]
	if !ok {
		if _, isConst := constants[n.name]; isConst {
			return 0, fail(ErrSyntax, n.pos, "constant %s is not callable", n.name)
		}
		return 0, fail(ErrUnknownIdentifier, n.pos, "%q", n.name)
	}
	if len(n.args) < fn.minArgs || len(n.args) > fn.maxArgs {
		return 0, fail(ErrArity, n.pos, "%s takes %s, got %d", n.name, fn.arity(), len(n.args))
	}

	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	v, err := fn.fn(args)
	if err != nil {
		return 0, &EvaluationError{Pos: n.pos, Detail: n.name + ": " + err.Error(), Err: kindOf(err)}
	}
	if math.IsNaN(v) {
		return 0, fail(ErrDomain, n.pos, "%s", n.name)
	}
	return v, nil
}

func (n callNode) String() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}
	return n.name + "(" + strings.Join(parts, ", ") + ")"
}
