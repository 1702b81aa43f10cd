// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/circalc/internal/session"
	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/util"
)

// Key cell geometry. Every key is keyInnerWidth columns plus a rounded
// border, so the grid can be hit-tested without measuring rendered output.
const (
	keyInnerWidth = 5
	keyCellWidth  = keyInnerWidth + 2
	keyCellHeight = 3
)

// PressFlash is how long a pressed key stays highlighted.
const PressFlash = 120 * time.Millisecond

// =============================================================================
// KEYPAD COMPONENT
// =============================================================================

// Keypad is the calculator button grid.
type Keypad struct {
	theme  *styles.Theme
	layout [][]string

	row, col int // Keyboard cursor
	hoverRow int // Mouse hover, -1 when outside
	hoverCol int

	pressed    string // Label currently flashing
	pressedSeq int

	originX, originY int // Screen position of the top-left key
}

// NewKeypad creates a keypad with the default layout.
func NewKeypad(theme *styles.Theme) *Keypad {
	return NewKeypadWithLayout(theme, session.Layout)
}

// NewKeypadWithLayout creates a keypad with a custom layout. Rows may have
// different lengths.
func NewKeypadWithLayout(theme *styles.Theme, layout [][]string) *Keypad {
	return &Keypad{
		theme:    theme,
		layout:   layout,
		hoverRow: -1,
		hoverCol: -1,
	}
}

// SetTheme swaps the theme, e.g. after a config reload.
func (k *Keypad) SetTheme(theme *styles.Theme) {
	k.theme = theme
}

// SetOrigin records where the keypad is drawn on screen.
func (k *Keypad) SetOrigin(x, y int) {
	k.originX = x
	k.originY = y
}

// Width returns the rendered width in columns.
func (k *Keypad) Width() int {
	widest := 0
	for _, row := range k.layout {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest * keyCellWidth
}

// Height returns the rendered height in lines.
func (k *Keypad) Height() int {
	return len(k.layout) * keyCellHeight
}

// Cursor returns the cursor position.
func (k *Keypad) Cursor() (row, col int) {
	return k.row, k.col
}

// Selected returns the label under the cursor.
func (k *Keypad) Selected() string {
	return k.layout[k.row][k.col]
}

// MoveCursor moves the cursor, wrapping at the edges.
func (k *Keypad) MoveCursor(dRow, dCol int) {
	if len(k.layout) == 0 {
		return
	}
	k.row = wrap(k.row+dRow, len(k.layout))
	k.col = wrap(k.col+dCol, len(k.layout[k.row]))
}

// KeyAt returns the label of the key covering screen cell (x, y).
func (k *Keypad) KeyAt(x, y int) (string, bool) {
	row, col, ok := k.cellAt(x, y)
	if !ok {
		return "", false
	}
	return k.layout[row][col], true
}

func (k *Keypad) cellAt(x, y int) (row, col int, ok bool) {
	x -= k.originX
	y -= k.originY
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/keyCellHeight, x/keyCellWidth
	if row >= len(k.layout) || col >= len(k.layout[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// Press flashes the key with label and returns the command that ends the
// flash.
func (k *Keypad) Press(label string) tea.Cmd {
	k.pressed = label
	k.pressedSeq++
	seq := k.pressedSeq
	return tea.Tick(PressFlash, func(time.Time) tea.Msg {
		return keyReleaseMsg{seq: seq}
	})
}

// Pressed returns the label currently highlighted as pressed.
func (k *Keypad) Pressed() string {
	return k.pressed
}

// Update handles keyboard navigation (when the keypad has focus) and mouse
// events. Activating a key emits a KeyPressedMsg.
func (k *Keypad) Update(msg tea.Msg) (*Keypad, tea.Cmd) {
	switch msg := msg.(type) {
	case keyReleaseMsg:
		if msg.seq == k.pressedSeq {
			k.pressed = ""
		}

	case tea.MouseMsg:
		row, col, ok := k.cellAt(msg.X, msg.Y)
		switch msg.Type {
		case tea.MouseMotion:
			if ok {
				k.hoverRow, k.hoverCol = row, col
			} else {
				k.hoverRow, k.hoverCol = -1, -1
			}
		case tea.MouseLeft:
			if ok {
				k.row, k.col = row, col
				return k, k.activate(k.layout[row][col])
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			k.MoveCursor(-1, 0)
		case "down":
			k.MoveCursor(1, 0)
		case "left":
			k.MoveCursor(0, -1)
		case "right":
			k.MoveCursor(0, 1)
		case "enter", " ":
			return k, k.activate(k.Selected())
		}
	}
	return k, nil
}

func (k *Keypad) activate(label string) tea.Cmd {
	return tea.Batch(k.Press(label), func() tea.Msg {
		return KeyPressedMsg{Label: label}
	})
}

// View renders the keypad. showCursor draws the keyboard cursor.
func (k *Keypad) View(showCursor bool) string {
	rows := make([]string, len(k.layout))
	for r, labels := range k.layout {
		cells := make([]string, len(labels))
		for c, label := range labels {
			cells[c] = k.renderKey(label, r, c, showCursor)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return strings.Join(rows, "\n")
}

func (k *Keypad) renderKey(label string, row, col int, showCursor bool) string {
	style := k.keyStyle(label)
	switch {
	case label == k.pressed:
		style = style.
			Background(k.theme.KeyPressed.GetBackground()).
			Foreground(k.theme.KeyPressed.GetForeground())
	case row == k.hoverRow && col == k.hoverCol:
		style = style.Background(k.theme.KeyHover.GetBackground())
	}
	if showCursor && row == k.row && col == k.col {
		style = style.BorderForeground(k.theme.KeyCursor.GetBorderTopForeground())
	}
	return style.Width(keyInnerWidth).Render(util.Center(label, keyInnerWidth))
}

func (k *Keypad) keyStyle(label string) lipgloss.Style {
	switch label {
	case session.KeyEquals:
		return k.theme.KeyEquals
	case session.KeyClear, session.KeyBackspace:
		return k.theme.KeyClear
	case "+", "-", "*", "/", session.KeyTimes, session.KeyDivide, session.KeyPower, session.KeyPercent:
		return k.theme.KeyOperator
	case session.KeySqrt, session.KeyPi, session.KeyAnswer, "(", ")":
		return k.theme.KeyFunction
	}
	return k.theme.Key
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
