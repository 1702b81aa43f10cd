// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"strings"

	"github.com/jeranaias/circalc/internal/calc"
)

// FormatEvaluation formats an evaluated expression: "2+3*4 = 14".
func FormatEvaluation(expr, result string) string {
	return expr + " = " + result
}

// FormatConversion formats a conversion: "1000.0 meter = 1 kilometer".
func FormatConversion(value float64, from, result, to string) string {
	return calc.Repr(value) + " " + from + " = " + result + " " + to
}

// FormatSquareRoot formats a square-root shortcut: "√(16.0) = 4".
func FormatSquareRoot(value float64, result string) string {
	return "√(" + calc.Repr(value) + ") = " + result
}

// Recalled is the outcome of selecting a history entry.
type Recalled struct {
	Text    string // Text to place on the display
	Numeric bool   // Text is a formatted number (and becomes the last answer)
}

// Recall turns entry back into display text. For entries containing "=" the
// text after the last "=" is used; when its first word parses as a number the
// number is redisplayed in display format, otherwise the text is used as is.
// Entries without "=" are redisplayed verbatim.
func Recall(entry string) Recalled {
	idx := strings.LastIndex(entry, "=")
	if idx < 0 {
		return Recalled{Text: entry}
	}

	rhs := strings.TrimSpace(entry[idx+1:])
	fields := strings.Fields(rhs)
	if len(fields) > 0 {
		if v, err := calc.ParseNumber(fields[0]); err == nil {
			return Recalled{Text: calc.Format(v), Numeric: true}
		}
	}
	return Recalled{Text: rhs}
}

// RecallAt resolves the entry at index i of l.
func (l *Log) RecallAt(i int) (Recalled, error) {
	entry, err := l.At(i)
	if err != nil {
		return Recalled{}, err
	}
	return Recall(entry), nil
}
