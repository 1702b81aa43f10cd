// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/util"
)

// StatusTimeout is how long a status message stays visible.
const StatusTimeout = 3 * time.Second

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: the focused panel, short key help and a
// transient status message.
type StatusBar struct {
	theme *styles.Theme
	help  help.Model
	width int

	focus   string
	message string
	isError bool
	seq     int
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	h := help.New()
	h.ShortSeparator = "  "
	return &StatusBar{theme: theme, help: h, width: 80}
}

// SetTheme swaps the theme.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
	s.help.Width = width
}

// SetFocus names the focused panel.
func (s *StatusBar) SetFocus(name string) {
	s.focus = name
}

// SetMessage shows text until StatusTimeout passes or another message
// replaces it.
func (s *StatusBar) SetMessage(text string, isError bool) tea.Cmd {
	s.message = text
	s.isError = isError
	s.seq++
	seq := s.seq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// Message returns the current status message.
func (s *StatusBar) Message() (string, bool) {
	return s.message, s.isError
}

// Update clears an expired message.
func (s *StatusBar) Update(msg tea.Msg) (*StatusBar, tea.Cmd) {
	if m, ok := msg.(ClearStatusMsg); ok && m.Seq == s.seq {
		s.message = ""
		s.isError = false
	}
	return s, nil
}

// View renders the bar with the given key bindings as help.
func (s *StatusBar) View(bindings []key.Binding) string {
	left := ""
	if s.focus != "" {
		left = s.theme.StatusFocus.Render(s.focus) + " "
	}

	var right string
	switch {
	case s.message != "" && s.isError:
		right = s.theme.StatusError.Render(s.message)
	case s.message != "":
		right = s.theme.StatusMessage.Render(s.message)
	}

	room := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	middle := ""
	if room > 0 {
		s.help.Width = room
		middle = s.help.ShortHelpView(bindings)
	}
	gap := s.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + middle + util.PadRight("", gap) + right
	return s.theme.StatusBar.Width(s.width).MaxWidth(s.width).Render(line)
}
