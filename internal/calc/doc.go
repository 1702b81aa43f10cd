// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc implements the expression evaluator behind the circalc keypad.
//
// Expressions are parsed by a small recursive-descent parser into a tree and
// evaluated against a fixed table of math functions and constants. Nothing
// outside that table is reachable from user input.
//
// # Grammar
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// Exponentiation is right associative and binds tighter than a unary minus on
// its left, so -2^2 is -4 and 2^-1 is 0.5.
//
// # Usage
//
//	v, err := calc.Evaluate("2+3*4")
//	if err != nil {
//	    var evalErr *calc.EvaluationError
//	    errors.As(err, &evalErr)
//	}
//	fmt.Println(calc.Format(v)) // 14
package calc
