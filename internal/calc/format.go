// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DisplayPrecision is the number of significant digits shown for results.
	DisplayPrecision = 12

	// ZeroThreshold is the magnitude below which a result is shown as "0".
	ZeroThreshold = 1e-12
)

// Format renders v for the display: the shortest form that round-trips at
// DisplayPrecision significant digits, with trailing zeros dropped and
// scientific notation for very large or very small magnitudes.
func Format(v float64) string {
	if math.Abs(v) < ZeroThreshold {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', DisplayPrecision, 64)
}

// Repr renders v the way a typed-in float literal is echoed back: the
// shortest round-trip digits, always with a fractional part or exponent
// ("16.0", "0.05", "1e-05", "1e+16").
func Repr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	_, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ParseNumber parses a single finite decimal number, such as the contents of
// the display. Surrounding whitespace is ignored.
func ParseNumber(s string) (float64, error) {
	txt := strings.TrimSpace(s)
	if txt == "" {
		return 0, &EvaluationError{Expr: s, Pos: -1, Err: ErrEmpty}
	}
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvaluationError{Expr: s, Pos: -1, Detail: "not a number: " + strconv.Quote(txt), Err: ErrSyntax}
	}
	return v, nil
}
