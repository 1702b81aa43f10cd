// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// operatorFolds maps typographic operators that NFKC leaves alone onto the
// ASCII forms the evaluator reads. × and ÷ are kept as is; the evaluator
// accepts them directly.
var operatorFolds = strings.NewReplacer(
	"−", "-", // minus sign
	"–", "-", // en dash
	"⋅", "*", // dot operator
	"∙", "*", // bullet operator
)

// NormalizeInput folds typed or pasted text into a form the evaluator
// accepts. NFKC turns full-width digits and operators (１＋２) into ASCII,
// the operator table handles a few lookalikes, and control characters are
// dropped. Superscript and subscript digits are kept as typed: NFKC would
// turn 3² into 32.
func NormalizeInput(s string) string {
	var b strings.Builder
	start := 0
	for i, r := range s {
		if isScriptDigit(r) {
			b.WriteString(norm.NFKC.String(s[start:i]))
			b.WriteRune(r)
			start = i + utf8.RuneLen(r)
		}
	}
	b.WriteString(norm.NFKC.String(s[start:]))

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, operatorFolds.Replace(b.String()))
}

// isScriptDigit reports whether r is ¹, ² or ³, or lies in the superscripts
// and subscripts block (U+2070 to U+209F).
func isScriptDigit(r rune) bool {
	switch r {
	case '¹', '²', '³':
		return true
	}
	return r >= 0x2070 && r <= 0x209F
}
