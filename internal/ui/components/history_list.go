// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/util"
)

// DoubleClickInterval is the longest gap between two clicks on the same
// entry that still counts as a double click.
const DoubleClickInterval = 400 * time.Millisecond

// HistoryList shows the history entries in a scrollable viewport with one
// selected entry. Enter or a double click recalls the selection.
type HistoryList struct {
	theme    *styles.Theme
	viewport viewport.Model
	entries  []string
	selected int // -1 when empty

	originY int // Screen row of the first visible entry

	lastClick    time.Time
	lastClickIdx int
	now          func() time.Time
}

// NewHistoryList creates a list width columns wide showing height entries.
func NewHistoryList(theme *styles.Theme, width, height int) *HistoryList {
	h := &HistoryList{
		theme:        theme,
		viewport:     viewport.New(width, height),
		selected:     -1,
		lastClickIdx: -1,
		now:          time.Now,
	}
	h.refresh()
	return h
}

// SetTheme swaps the theme.
func (h *HistoryList) SetTheme(theme *styles.Theme) {
	h.theme = theme
	h.refresh()
}

// SetSize resizes the viewport.
func (h *HistoryList) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	h.viewport.Width = width
	h.viewport.Height = height
	h.refresh()
	h.ensureVisible()
}

// SetOrigin records the screen row of the first visible line.
func (h *HistoryList) SetOrigin(y int) {
	h.originY = y
}

// Height returns the number of visible entries.
func (h *HistoryList) Height() int {
	return h.viewport.Height
}

// SetEntries replaces the entries. When entries were added the newest one
// is selected and scrolled into view.
func (h *HistoryList) SetEntries(entries []string) {
	grew := len(entries) > len(h.entries)
	h.entries = entries
	switch {
	case len(entries) == 0:
		h.selected = -1
	case grew || h.selected >= len(entries):
		h.selected = len(entries) - 1
	}
	h.refresh()
	h.ensureVisible()
}

// Len returns the number of entries.
func (h *HistoryList) Len() int {
	return len(h.entries)
}

// Selected returns the selected index.
func (h *HistoryList) Selected() (int, bool) {
	return h.selected, h.selected >= 0
}

// Select moves the selection to i, clamped to the entries.
func (h *HistoryList) Select(i int) {
	if len(h.entries) == 0 {
		h.selected = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(h.entries) {
		i = len(h.entries) - 1
	}
	h.selected = i
	h.refresh()
	h.ensureVisible()
}

// YOffset returns the index of the first visible entry.
func (h *HistoryList) YOffset() int {
	return h.viewport.YOffset
}

func (h *HistoryList) ensureVisible() {
	if h.selected < 0 {
		return
	}
	top := h.viewport.YOffset
	switch {
	case h.selected < top:
		h.viewport.SetYOffset(h.selected)
	case h.selected >= top+h.viewport.Height:
		h.viewport.SetYOffset(h.selected - h.viewport.Height + 1)
	}
}

func (h *HistoryList) refresh() {
	if len(h.entries) == 0 {
		h.viewport.SetContent(h.theme.HistoryEmpty.Render("No calculations yet"))
		return
	}

	digits := len(fmt.Sprint(len(h.entries)))
	textWidth := h.viewport.Width - digits - 2
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		index := h.theme.HistoryIndex.Render(fmt.Sprintf("%*d ", digits, i+1))
		text := " " + util.Truncate(e, textWidth-1, false)
		if i == h.selected {
			lines[i] = index + h.theme.HistorySelected.Render(util.PadRight(text, textWidth))
		} else {
			lines[i] = index + h.theme.HistoryItem.Render(text)
		}
	}
	h.viewport.SetContent(strings.Join(lines, "\n"))
}

// Update handles navigation keys (when the list has focus) and mouse events.
func (h *HistoryList) Update(msg tea.Msg) (*HistoryList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			h.Select(h.selected - 1)
		case "down":
			h.Select(h.selected + 1)
		case "pgup":
			h.Select(h.selected - h.viewport.Height)
		case "pgdown":
			h.Select(h.selected + h.viewport.Height)
		case "home":
			h.Select(0)
		case "end":
			h.Select(len(h.entries) - 1)
		case "enter":
			return h, h.recall()
		}

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			h.viewport.LineUp(1)
		case tea.MouseWheelDown:
			h.viewport.LineDown(1)
		case tea.MouseLeft:
			return h, h.click(msg.Y)
		}
	}
	return h, nil
}

// click selects the entry on screen row y; a second click on the same entry
// within DoubleClickInterval recalls it.
func (h *HistoryList) click(y int) tea.Cmd {
	line := y - h.originY
	if line < 0 || line >= h.viewport.Height {
		return nil
	}
	i := h.viewport.YOffset + line
	if i >= len(h.entries) {
		return nil
	}

	now := h.now()
	double := i == h.lastClickIdx && now.Sub(h.lastClick) <= DoubleClickInterval
	h.lastClick, h.lastClickIdx = now, i
	h.Select(i)
	if double {
		h.lastClickIdx = -1
		return h.recall()
	}
	return nil
}

func (h *HistoryList) recall() tea.Cmd {
	i, ok := h.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg { return RecallMsg{Index: i} }
}

// View renders the visible entries.
func (h *HistoryList) View() string {
	return h.viewport.View()
}
