// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/circalc/internal/session"
	"github.com/jeranaias/circalc/internal/ui/components"
	"github.com/jeranaias/circalc/internal/util"
)

// Update handles one event.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case components.KeyPressedMsg:
		return m, m.press(msg.Label)

	case components.RecallMsg:
		out, err := m.session.Recall(msg.Index)
		if err != nil {
			return m, m.status.SetMessage(err.Error(), true)
		}
		m.sync()
		return m, m.status.SetMessage("recalled "+out.Display, false)

	case components.ConvertRequestMsg:
		text, err := m.session.Convert(msg.Value)
		m.converter.SetResult(text, err != nil)
		m.sync()
		return m, nil

	case components.ClearStatusMsg:
		m.status.Update(msg)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.err)
			return m, m.status.SetMessage("clipboard unavailable", true)
		}
		return m, m.status.SetMessage("copied "+util.Truncate(msg.text, 24, false), false)

	case ConfigReloadedMsg:
		return m, tea.Batch(m.reload(msg), waitForReload(m.reloads))
	}

	// Remaining messages (key release ticks, cursor blink) go to the
	// components that may own them.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.keypad, cmd = m.keypad.Update(msg)
	cmds = append(cmds, cmd)
	if m.focus == FocusConverter {
		m.converter, cmd = m.converter.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) reload(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Event.Err != nil {
		m.logger.Warn("config reload failed", "error", msg.Event.Err)
		return m.status.SetMessage("config error: "+msg.Event.Err.Error(), true)
	}
	m.applyConfig(msg.Event.Config)
	m.logger.Info("config reloaded", "theme", m.cfg.UI.Theme, "show_keypad", m.cfg.UI.ShowKeypad)
	return m.status.SetMessage("config reloaded", false)
}

// press applies a keypad label to the session and flashes the key.
func (m *Model) press(label string) tea.Cmd {
	out := m.session.Press(label)
	m.sync()
	if out.Failed() {
		return m.status.SetMessage(out.Err.Error(), true)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help) && !m.typingValue():
		m.help.Toggle()
		return nil
	}

	if m.help.Visible() {
		if msg.String() == "esc" || msg.String() == "q" {
			m.help.Hide()
			return nil
		}
		_, cmd := m.help.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Copy):
		return copyCmd(m.writeClip, m.session.Display())
	case key.Matches(msg, m.keys.ToggleKeypad):
		m.showKeypad = !m.showKeypad
		m.relayout()
		return nil
	}

	switch m.focus {
	case FocusHistory:
		_, cmd := m.history.Update(m.vimKey(msg))
		return cmd
	case FocusConverter:
		_, cmd := m.converter.Update(msg)
		return cmd
	}
	return m.calculatorKey(msg)
}

// typingValue reports whether keys are going into the converter value field.
func (m *Model) typingValue() bool {
	return m.focus == FocusConverter && m.converter.Field() == components.FieldValue && !m.help.Visible()
}

// vimKey maps h/j/k/l to arrows when vim keys are enabled.
func (m *Model) vimKey(msg tea.KeyMsg) tea.KeyMsg {
	if !m.vimKeys || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return msg
	}
	switch msg.Runes[0] {
	case 'h':
		return tea.KeyMsg{Type: tea.KeyLeft}
	case 'j':
		return tea.KeyMsg{Type: tea.KeyDown}
	case 'k':
		return tea.KeyMsg{Type: tea.KeyUp}
	case 'l':
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return msg
}

func (m *Model) calculatorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Evaluate):
		return m.pressWithFlash(session.KeyEquals)
	case key.Matches(msg, m.keys.Clear):
		return m.pressWithFlash(session.KeyClear)
	case key.Matches(msg, m.keys.Backspace):
		return m.pressWithFlash(session.KeyBackspace)
	case key.Matches(msg, m.keys.SquareRoot):
		return m.pressWithFlash(session.KeySqrt)
	case key.Matches(msg, m.keys.Percent):
		return m.pressWithFlash(session.KeyPercent)
	}

	nav := m.vimKey(msg)
	switch nav.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		if m.showKeypad {
			m.keypad.Update(nav)
		}
		return nil
	}
	if m.showKeypad && key.Matches(msg, m.keys.PressKey) {
		_, cmd := m.keypad.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return cmd
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.session.Type(string(msg.Runes))
		m.sync()
	}
	return nil
}

// pressWithFlash applies label and highlights its key as when clicked.
func (m *Model) pressWithFlash(label string) tea.Cmd {
	return tea.Batch(m.keypad.Press(label), m.press(label))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.help.Visible() {
		_, cmd := m.help.Update(msg)
		return cmd
	}

	if m.layout.inHistory(msg.X, msg.Y) {
		switch msg.Type {
		case tea.MouseLeft:
			cmd := m.setFocus(FocusHistory)
			_, hcmd := m.history.Update(msg)
			return tea.Batch(cmd, hcmd)
		case tea.MouseWheelUp, tea.MouseWheelDown:
			_, cmd := m.history.Update(msg)
			return cmd
		}
	}

	if !m.showKeypad {
		return nil
	}
	if _, onKey := m.keypad.KeyAt(msg.X, msg.Y); onKey && msg.Type == tea.MouseLeft && m.focus != FocusCalculator {
		m.setFocus(FocusCalculator)
	}
	_, cmd := m.keypad.Update(msg)
	return cmd
}
