// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/circalc/internal/ui/styles"
)

// Fixed layout sizes in cells.
const (
	appPadX       = 1 // App horizontal padding
	titleHeight   = 1
	displayHeight = 4 // Border, hint line, expression line, border
	panelInsetX   = 2 // Left border plus padding
	panelInsetY   = 2 // Top border plus the panel title line
	panelChromeW  = 4 // Borders plus padding on both sides
	panelChromeH  = 3 // Borders plus the title line
	statusHeight  = 1
)

// layout holds where each panel's content is drawn, for mouse hit-testing.
type layout struct {
	wide     bool
	contentW int

	keypadX, keypadY int

	historyX, historyY int
	historyW, historyH int
}

// inHistory reports whether screen cell (x, y) lies on the history list.
func (l layout) inHistory(x, y int) bool {
	return x >= l.historyX && x < l.historyX+l.historyW &&
		y >= l.historyY && y < l.historyY+l.historyH
}

// relayout sizes the components for the current window and settings.
func (m *Model) relayout() {
	m.theme.SetSize(m.width, m.height)

	l := layout{contentW: m.width - 2*appPadX}
	if l.contentW < 24 {
		l.contentW = 24
	}
	l.wide = m.showKeypad && m.theme.GetLayoutMode() == styles.LayoutWide

	bodyY := titleHeight + displayHeight
	keypadOuterW := m.keypad.Width() + panelChromeW
	keypadOuterH := m.keypad.Height() + panelChromeH
	converterOuterH := converterRows + panelChromeH

	avail := m.height - bodyY - statusHeight - converterOuterH - panelChromeH
	switch {
	case l.wide:
		l.keypadX, l.keypadY = appPadX+panelInsetX, bodyY+panelInsetY
		l.historyX = appPadX + keypadOuterW + panelInsetX
		l.historyY = bodyY + panelInsetY
		l.historyW = l.contentW - keypadOuterW - panelChromeW
	default:
		y := bodyY
		if m.showKeypad {
			l.keypadX, l.keypadY = appPadX+panelInsetX, y+panelInsetY
			y += keypadOuterH
			avail -= keypadOuterH
		}
		l.historyX = appPadX + panelInsetX
		l.historyY = y + panelInsetY
		l.historyW = l.contentW - panelChromeW
	}
	if l.historyW < 10 {
		l.historyW = 10
	}

	l.historyH = m.cfg.UI.HistoryHeight
	if l.historyH > avail {
		l.historyH = avail
	}
	if l.historyH < 1 {
		l.historyH = 1
	}

	m.layout = l
	m.display.SetWidth(l.contentW)
	m.keypad.SetOrigin(l.keypadX, l.keypadY)
	m.history.SetSize(l.historyW, l.historyH)
	m.history.SetOrigin(l.historyY)
	m.converter.SetWidth(l.historyW)
	m.help.SetSize(l.contentW, m.height-bodyY-statusHeight)
	m.status.SetWidth(l.contentW)
}

// View renders the whole screen.
func (m *Model) View() string {
	title := m.theme.Title.Render("circalc") + "  " + m.theme.Subtitle.Render("calculator & unit converter")

	body := m.body()
	if m.help.Visible() {
		body = m.help.View()
	}

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.display.View(),
		body,
		m.status.View(m.keys.ShortHelp(m.focus)),
	))
}

func (m *Model) body() string {
	l := m.layout
	history := m.panel("History", m.history.View(), m.focus == FocusHistory, l.historyW)
	converter := m.panel("Converter", m.converter.View(), m.focus == FocusConverter, l.historyW)

	if !m.showKeypad {
		return lipgloss.JoinVertical(lipgloss.Left, history, converter)
	}
	keypad := m.panel("Keypad", m.keypad.View(m.focus == FocusCalculator), m.focus == FocusCalculator, m.keypad.Width())
	if l.wide {
		return lipgloss.JoinHorizontal(lipgloss.Top, keypad, lipgloss.JoinVertical(lipgloss.Left, history, converter))
	}
	return lipgloss.JoinVertical(lipgloss.Left, keypad, history, converter)
}

// panel draws a titled box whose content is width columns wide.
func (m *Model) panel(title, content string, focused bool, width int) string {
	style := m.theme.Panel
	if focused {
		style = m.theme.PanelFocused
	}
	return style.Width(width + 2).Render(m.theme.PanelTitle.Render(title) + "\n" + content)
}
