// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/circalc/internal/session"
	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/units"
	"github.com/jeranaias/circalc/internal/util"
)

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

// collect runs cmd and any batched commands and returns the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// =============================================================================
// KEYPAD
// =============================================================================

func TestKeypad_Geometry(t *testing.T) {
	k := NewKeypad(testTheme())
	assert.Equal(t, 5*keyCellWidth, k.Width())
	assert.Equal(t, 5*keyCellHeight, k.Height())
	assert.Equal(t, "(", k.Selected())
}

func TestKeypad_CursorWraps(t *testing.T) {
	k := NewKeypad(testTheme())

	k.MoveCursor(0, -1)
	assert.Equal(t, "√", k.Selected())
	k.MoveCursor(-1, 0)
	assert.Equal(t, "ANS", k.Selected())
	k.MoveCursor(1, 1)
	row, col := k.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestKeypad_KeyAt(t *testing.T) {
	k := NewKeypad(testTheme())
	k.SetOrigin(10, 2)

	tests := []struct {
		x, y  int
		label string
		ok    bool
	}{
		{10, 2, "(", true},
		{10 + keyCellWidth - 1, 2 + keyCellHeight - 1, "(", true},
		{10 + keyCellWidth, 2, ")", true},
		{10, 2 + keyCellHeight, "7", true},
		{10 + 4*keyCellWidth, 2 + 4*keyCellHeight, "ANS", true},
		{9, 2, "", false},
		{10, 1, "", false},
		{10 + 5*keyCellWidth, 2, "", false},
		{10, 2 + 5*keyCellHeight, "", false},
	}
	for _, tt := range tests {
		label, ok := k.KeyAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.label, label, "(%d,%d)", tt.x, tt.y)
	}
}

func TestKeypad_MouseClickPresses(t *testing.T) {
	k := NewKeypad(testTheme())
	k.SetOrigin(0, 0)

	_, cmd := k.Update(tea.MouseMsg{X: keyCellWidth * 2, Y: keyCellHeight, Type: tea.MouseLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, "9", k.Pressed())
	assert.Equal(t, "9", k.Selected())

	msgs := collect(cmd)
	assert.Contains(t, msgs, KeyPressedMsg{Label: "9"})

	// The flash ends with the matching release.
	for _, m := range msgs {
		k.Update(m)
	}
	assert.Equal(t, "", k.Pressed())
}

func TestKeypad_StaleReleaseKeepsFlash(t *testing.T) {
	k := NewKeypad(testTheme())
	k.Press("1")
	k.Press("2")
	k.Update(keyReleaseMsg{seq: 1})
	assert.Equal(t, "2", k.Pressed())
}

func TestKeypad_MouseOutsideIgnored(t *testing.T) {
	k := NewKeypad(testTheme())
	k.SetOrigin(5, 5)
	_, cmd := k.Update(tea.MouseMsg{X: 1, Y: 1, Type: tea.MouseLeft})
	assert.Nil(t, cmd)
}

func TestKeypad_EnterPressesSelected(t *testing.T) {
	k := NewKeypad(testTheme())
	k.Update(tea.KeyMsg{Type: tea.KeyDown})
	k.Update(tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := k.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, collect(cmd), KeyPressedMsg{Label: "8"})
}

func TestKeypad_View(t *testing.T) {
	k := NewKeypad(testTheme())
	view := k.View(true)
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, k.Height())
	for _, label := range []string{"ANS", "√", "π", "×", "7"} {
		assert.Contains(t, view, label)
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

func TestDisplay_Line(t *testing.T) {
	d := NewDisplay(testTheme(), 14)

	assert.Equal(t, "         0", d.Line())

	d.SetText("2+3", false)
	assert.Equal(t, "       2+3", d.Line())

	d.SetText("123456789012345", false)
	line := d.Line()
	assert.Equal(t, 10, util.StringWidth(line))
	assert.True(t, strings.HasPrefix(line, "…"))
	assert.True(t, strings.HasSuffix(line, "012345"))
}

func TestDisplay_View(t *testing.T) {
	d := NewDisplay(testTheme(), 30)
	d.SetText("Error", true)
	d.SetAnswer("14")
	view := d.View()
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "ans 14")
}

// =============================================================================
// HISTORY LIST
// =============================================================================

func TestHistoryList_SelectsNewest(t *testing.T) {
	h := NewHistoryList(testTheme(), 30, 3)
	_, ok := h.Selected()
	assert.False(t, ok)
	assert.Contains(t, h.View(), "No calculations yet")

	h.SetEntries([]string{"1+1 = 2", "2*3 = 6", "3^2 = 9", "√(16.0) = 4"})
	i, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, 1, h.YOffset())
	assert.Contains(t, h.View(), "√(16.0) = 4")
	assert.NotContains(t, h.View(), "1+1 = 2")
}

func TestHistoryList_Navigation(t *testing.T) {
	h := NewHistoryList(testTheme(), 30, 2)
	h.SetEntries([]string{"a = 1", "b = 2", "c = 3"})

	h.Update(tea.KeyMsg{Type: tea.KeyUp})
	h.Update(tea.KeyMsg{Type: tea.KeyUp})
	h.Update(tea.KeyMsg{Type: tea.KeyUp})
	i, _ := h.Selected()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, h.YOffset())

	h.Update(tea.KeyMsg{Type: tea.KeyEnd})
	i, _ = h.Selected()
	assert.Equal(t, 2, i)

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{RecallMsg{Index: 2}}, collect(cmd))
}

func TestHistoryList_DoubleClickRecalls(t *testing.T) {
	h := NewHistoryList(testTheme(), 30, 5)
	h.SetOrigin(4)
	h.SetEntries([]string{"a = 1", "b = 2", "c = 3"})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	_, cmd := h.Update(tea.MouseMsg{Y: 5, Type: tea.MouseLeft})
	assert.Nil(t, cmd)
	i, _ := h.Selected()
	assert.Equal(t, 1, i)

	now = now.Add(100 * time.Millisecond)
	_, cmd = h.Update(tea.MouseMsg{Y: 5, Type: tea.MouseLeft})
	assert.Equal(t, []tea.Msg{RecallMsg{Index: 1}}, collect(cmd))

	// A slow second click only selects.
	now = now.Add(time.Second)
	h.Update(tea.MouseMsg{Y: 4, Type: tea.MouseLeft})
	now = now.Add(DoubleClickInterval + time.Millisecond)
	_, cmd = h.Update(tea.MouseMsg{Y: 4, Type: tea.MouseLeft})
	assert.Nil(t, cmd)

	// Clicks below the entries do nothing.
	_, cmd = h.Update(tea.MouseMsg{Y: 8, Type: tea.MouseLeft})
	assert.Nil(t, cmd)
}

// =============================================================================
// CONVERTER PANEL
// =============================================================================

func TestConverterPanel_CyclesSelection(t *testing.T) {
	sel := units.NewSelection(units.Length)
	p := NewConverterPanel(testTheme(), sel, 40)
	p.Focus()

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, FieldCategory, p.Field())

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, units.Weight, sel.Category())
	assert.Equal(t, "kilogram", sel.From())
	assert.Equal(t, "gram", sel.To())

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "gram", sel.From())

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, FieldTo, p.Field())
	assert.Equal(t, "milligram", sel.To())

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "milligram", sel.From())
	assert.Equal(t, "gram", sel.To())

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, FieldValue, p.Field())
}

func TestConverterPanel_TypingAndRequest(t *testing.T) {
	sel := units.NewSelection(units.Temperature)
	p := NewConverterPanel(testTheme(), sel, 40)
	p.Focus()

	p.Update(keyRunes("3"))
	p.Update(keyRunes("2"))
	assert.Equal(t, "32", p.Value())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{ConvertRequestMsg{Value: "32"}}, collect(cmd))

	p.SetResult("0 Celsius", false)
	assert.Contains(t, p.View(), "0 Celsius")
	p.SetResult("Invalid number", true)
	text, failed := p.Result()
	assert.Equal(t, "Invalid number", text)
	assert.True(t, failed)
}

func TestConverterPanel_View(t *testing.T) {
	sel := units.NewSelection(units.Data)
	p := NewConverterPanel(testTheme(), sel, 40)
	view := p.View()
	for _, s := range []string{"Category", "< Data >", "< bit >", "< byte >", "enter a value"} {
		assert.Contains(t, view, s)
	}
}

// =============================================================================
// HELP AND STATUS
// =============================================================================

func TestHelpMarkdown(t *testing.T) {
	md := HelpMarkdown()
	assert.NotContains(t, md, "{{")
	assert.Contains(t, md, "`factorial`")
	assert.Contains(t, md, "Temperature")
}

func TestHelpOverlay_Toggle(t *testing.T) {
	h := NewHelpOverlay(testTheme())
	h.SetSize(80, 20)
	assert.False(t, h.Visible())
	h.Toggle()
	assert.True(t, h.Visible())
	assert.Contains(t, h.View(), "circalc")
	h.Hide()
	assert.False(t, h.Visible())
}

func TestStatusBar_MessageExpires(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetWidth(60)

	s.SetMessage("first", false)
	s.SetMessage("second", true)

	s.Update(ClearStatusMsg{Seq: 1})
	msg, isErr := s.Message()
	assert.Equal(t, "second", msg)
	assert.True(t, isErr)

	s.Update(ClearStatusMsg{Seq: 2})
	msg, _ = s.Message()
	assert.Equal(t, "", msg)
}

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetWidth(80)
	s.SetFocus("keypad")
	s.SetMessage("copied", false)

	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("C-c", "quit"))
	view := s.View([]key.Binding{quit})
	assert.Contains(t, view, "keypad")
	assert.Contains(t, view, "quit")
	assert.Contains(t, view, "copied")
}

func TestKeyStyleCoversLayout(t *testing.T) {
	k := NewKeypad(testTheme())
	for _, row := range session.Layout {
		for _, label := range row {
			_ = k.keyStyle(label).Render(label)
		}
	}
}
