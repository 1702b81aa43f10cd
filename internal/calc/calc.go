// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"errors"
	"math"
)

// Expr is a parsed expression ready for evaluation.
type Expr struct {
	src  string
	root node
}

// Compile parses src without evaluating it.
func Compile(src string) (*Expr, error) {
	root, err := parse(src)
	if err != nil {
		return nil, withExpr(err, src)
	}
	return &Expr{src: src, root: root}, nil
}

// Eval evaluates the expression. Results that are not finite are reported as
// domain errors.
func (e *Expr) Eval() (float64, error) {
	v, err := e.root.eval()
	if err != nil {
		return 0, withExpr(err, e.src)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvaluationError{Expr: e.src, Pos: -1, Detail: "result is not a finite number", Err: ErrDomain}
	}
	return v, nil
}

// String returns the fully parenthesized form of the parsed tree.
func (e *Expr) String() string {
	return e.root.String()
}

// Source returns the text the expression was compiled from.
func (e *Expr) Source() string {
	return e.src
}

// Evaluate parses and evaluates src in one step.
func Evaluate(src string) (float64, error) {
	expr, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return expr.Eval()
}

// SquareRoot parses the whole display as a single number and returns it
// together with its square root. It does not go through the parser, so
// "9+7" is rejected rather than evaluated.
func SquareRoot(display string) (value, root float64, err error) {
	value, err = ParseNumber(display)
	if err != nil {
		return 0, 0, err
	}
	if value < 0 {
		return value, 0, &EvaluationError{Expr: display, Pos: -1, Detail: "square root of a negative number", Err: ErrDomain}
	}
	return value, math.Sqrt(value), nil
}

// Percent parses the whole display as a single number and divides it by 100.
// The result replaces the expression outright; it is not a percentage of a
// previous operand.
func Percent(display string) (float64, error) {
	v, err := ParseNumber(display)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func withExpr(err error, src string) error {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) && evalErr.Expr == "" {
		evalErr.Expr = src
	}
	return err
}
