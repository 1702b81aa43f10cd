// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/units"
)

//go:embed help.md
var helpMarkdown string

// HelpMarkdown returns the help text with the function, constant and
// category lists filled in.
func HelpMarkdown() string {
	cats := make([]string, 0, len(units.Categories()))
	for _, c := range units.Categories() {
		cats = append(cats, c.String())
	}
	return strings.NewReplacer(
		"{{functions}}", "`"+strings.Join(calc.Functions(), "` `")+"`",
		"{{constants}}", "`"+strings.Join(calc.Constants(), "` `")+"`",
		"{{categories}}", strings.Join(cats, ", "),
	).Replace(helpMarkdown)
}

// HelpOverlay is a scrollable key reference rendered from markdown.
type HelpOverlay struct {
	theme    *styles.Theme
	viewport viewport.Model
	visible  bool
	width    int
}

// NewHelpOverlay creates a hidden help overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	return &HelpOverlay{theme: theme, viewport: viewport.New(0, 0)}
}

// SetTheme swaps the theme and re-renders.
func (h *HelpOverlay) SetTheme(theme *styles.Theme) {
	h.theme = theme
	h.render()
}

// SetSize fits the overlay into a width x height area.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width - 4
	if h.width < 20 {
		h.width = 20
	}
	h.viewport.Width = h.width
	h.viewport.Height = height - 2
	if h.viewport.Height < 3 {
		h.viewport.Height = 3
	}
	h.render()
}

func (h *HelpOverlay) render() {
	md := HelpMarkdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(h.theme.GlamourStyle()),
		glamour.WithWordWrap(h.width-2),
	)
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			md = out
		}
	}
	h.viewport.SetContent(md)
}

// Toggle shows or hides the overlay.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
	if h.visible {
		h.viewport.GotoTop()
	}
}

// Hide closes the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Visible reports whether the overlay is shown.
func (h *HelpOverlay) Visible() bool {
	return h.visible
}

// Update scrolls the help text.
func (h *HelpOverlay) Update(msg tea.Msg) (*HelpOverlay, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View renders the overlay box.
func (h *HelpOverlay) View() string {
	return h.theme.HelpBox.Render(h.viewport.View())
}
