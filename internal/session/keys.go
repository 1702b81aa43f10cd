// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// Keypad labels with special behaviour. Any other label is appended to the
// expression as is.
const (
	KeyClear     = "C"
	KeyEquals    = "="
	KeySqrt      = "√"
	KeyPi        = "π"
	KeyAnswer    = "ANS"
	KeyTimes     = "×"
	KeyDivide    = "÷"
	KeyPower     = "^"
	KeyPercent   = "%"
	KeyBackspace = "⌫"
)

// piText is what the π key inserts: the decimal value, not the identifier.
const piText = "3.141592653589793"

// Layout is the default keypad, row by row.
var Layout = [][]string{
	{"(", ")", KeyPercent, KeyClear, KeySqrt},
	{"7", "8", "9", "/", KeyTimes},
	{"4", "5", "6", "*", KeyPower},
	{"1", "2", "3", "-", KeyPi},
	{"0", ".", KeyEquals, "+", KeyAnswer},
}

// insertText returns the expression text a plain key appends.
func insertText(label string) string {
	switch label {
	case KeyPi:
		return piText
	case KeyTimes:
		return "*"
	case KeyDivide:
		return "/"
	}
	return label
}
