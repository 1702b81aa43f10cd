// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/util"
)

// displayChrome is the border plus horizontal padding of the display box.
const displayChrome = 4

// Display shows the current expression right-aligned, like a calculator
// screen. Long expressions keep their right end visible.
type Display struct {
	theme   *styles.Theme
	width   int
	text    string
	errored bool
	answer  string
}

// NewDisplay creates a display box width columns wide.
func NewDisplay(theme *styles.Theme, width int) *Display {
	return &Display{theme: theme, width: width}
}

// SetTheme swaps the theme.
func (d *Display) SetTheme(theme *styles.Theme) {
	d.theme = theme
}

// SetWidth sets the outer width including the border.
func (d *Display) SetWidth(width int) {
	d.width = width
}

// Width returns the outer width.
func (d *Display) Width() int {
	return d.width
}

// SetText updates the shown text. errored renders it as a failure marker.
func (d *Display) SetText(text string, errored bool) {
	d.text = text
	d.errored = errored
}

// SetAnswer updates the last-answer hint above the expression.
func (d *Display) SetAnswer(answer string) {
	d.answer = answer
}

// Text returns the shown text.
func (d *Display) Text() string {
	return d.text
}

// innerWidth is the number of columns available for text.
func (d *Display) innerWidth() int {
	if w := d.width - displayChrome; w > 0 {
		return w
	}
	return 1
}

// Line returns the expression line padded and truncated to the inner width,
// without styling.
func (d *Display) Line() string {
	w := d.innerWidth()
	text := d.text
	if text == "" {
		text = "0"
	}
	return util.PadLeft(util.Truncate(text, w, true), w)
}

// View renders the display box.
func (d *Display) View() string {
	w := d.innerWidth()

	hint := ""
	if d.answer != "" {
		hint = "ans " + d.answer
	}
	hintLine := d.theme.DisplayHint.Render(util.PadLeft(util.Truncate(hint, w, true), w))

	textStyle := d.theme.DisplayText
	if d.errored {
		textStyle = d.theme.DisplayError
	}
	return d.theme.Display.Width(d.width - 2).Render(hintLine + "\n" + textStyle.Render(d.Line()))
}
