// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"errors"
	"fmt"
)

// Error kinds. An *EvaluationError always wraps exactly one of these.
var (
	ErrEmpty             = errors.New("empty expression")
	ErrSyntax            = errors.New("syntax error")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrArity             = errors.New("wrong number of arguments")
	ErrDomain            = errors.New("math domain error")
)

// EvaluationError reports why an expression could not be evaluated.
type EvaluationError struct {
	Expr   string // Expression as given by the caller (may be empty)
	Pos    int    // Rune offset of the offending token, -1 when not applicable
	Detail string // Short human-readable detail
	Err    error  // One of the Err* kinds above
}

func (e *EvaluationError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos >= 0 {
		msg += fmt.Sprintf(" (at %d)", e.Pos)
	}
	return msg
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Kind returns a stable short name for the wrapped error kind, used in logs
// and JSON output.
func (e *EvaluationError) Kind() string {
	switch e.Err {
	case ErrEmpty:
		return "empty"
	case ErrSyntax:
		return "syntax"
	case ErrDivisionByZero:
		return "division_by_zero"
	case ErrUnknownIdentifier:
		return "unknown_identifier"
	case ErrArity:
		return "arity"
	case ErrDomain:
		return "domain"
	default:
		return "unknown"
	}
}

func fail(kind error, pos int, format string, args ...interface{}) *EvaluationError {
	return &EvaluationError{
		Pos:    pos,
		Detail: fmt.Sprintf(format, args...),
		Err:    kind,
	}
}
