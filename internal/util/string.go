// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns. When text is removed and there
// is room, an ellipsis marks the cut. With keepRight the rightmost columns are
// kept instead, which suits a calculator display where the newest input is at
// the end.
func Truncate(s string, maxWidth int, keepRight bool) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if !keepRight {
		if maxWidth < 3 {
			return runewidth.Truncate(s, maxWidth, "")
		}
		return runewidth.Truncate(s, maxWidth, "...")
	}

	budget := maxWidth
	prefix := ""
	if maxWidth >= 3 {
		budget--
		prefix = "…"
	}
	runes := []rune(s)
	width := 0
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if width+w > budget {
			break
		}
		width += w
		i--
	}
	return prefix + string(runes[i:])
}

// PadLeft right-aligns s in a field width columns wide. Text wider than the
// field is returned unchanged.
func PadLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// PadRight left-aligns s in a field width columns wide.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center places s in the middle of a field width columns wide, with any odd
// column going to the right.
func Center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// DropLastRune removes the final character of s.
func DropLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
