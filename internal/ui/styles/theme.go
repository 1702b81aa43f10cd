// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted in the [ui] theme setting.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         string
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// ==========================================================================
	// DISPLAY STYLES
	// ==========================================================================

	Display      lipgloss.Style
	DisplayText  lipgloss.Style
	DisplayError lipgloss.Style
	DisplayHint  lipgloss.Style

	// ==========================================================================
	// KEYPAD STYLES
	// ==========================================================================

	Key         lipgloss.Style
	KeyOperator lipgloss.Style
	KeyFunction lipgloss.Style
	KeyClear    lipgloss.Style
	KeyEquals   lipgloss.Style
	KeyHover    lipgloss.Style
	KeyCursor   lipgloss.Style
	KeyPressed  lipgloss.Style

	// ==========================================================================
	// HISTORY STYLES
	// ==========================================================================

	HistoryItem     lipgloss.Style
	HistorySelected lipgloss.Style
	HistoryIndex    lipgloss.Style
	HistoryEmpty    lipgloss.Style

	// ==========================================================================
	// CONVERTER STYLES
	// ==========================================================================

	Label          lipgloss.Style
	Cycler         lipgloss.Style
	CyclerFocused  lipgloss.Style
	ConvertResult  lipgloss.Style
	ConvertError   lipgloss.Style
	ConvertPending lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style
	StatusFocus   lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY
	// ==========================================================================

	HelpBox lipgloss.Style
}

// NewTheme creates a theme for mode ("auto", "dark" or "light"). Auto asks
// the terminal for its background; the others force the adaptive colors to
// one side.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	mode = strings.ToLower(strings.TrimSpace(mode))
	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// GlamourStyle returns the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Panels
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelFocused = t.Panel.Copy().
		BorderForeground(FocusRing)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	// Display
	t.Display = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Background(SurfaceDim).
		Padding(0, 1)

	t.DisplayText = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.DisplayError = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.DisplayHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Keypad. Rounded borders make the keys look like round buttons.
	t.Key = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.KeyOperator = t.Key.Copy().Foreground(Cyan).Bold(true)
	t.KeyFunction = t.Key.Copy().Foreground(Amber)
	t.KeyClear = t.Key.Copy().Foreground(Rose).Bold(true)
	t.KeyEquals = t.Key.Copy().Foreground(Purple).Bold(true).BorderForeground(Purple)

	t.KeyHover = lipgloss.NewStyle().
		Background(SurfaceBright)

	t.KeyCursor = lipgloss.NewStyle().
		BorderForeground(FocusRing)

	t.KeyPressed = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse)

	// History
	t.HistoryItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.HistorySelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)

	t.HistoryIndex = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HistoryEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Converter
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(9)

	t.Cycler = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CyclerFocused = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Underline(true)

	t.ConvertResult = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ConvertError = lipgloss.NewStyle().
		Foreground(Rose)

	t.ConvertPending = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim)

	t.StatusMessage = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose)

	t.StatusFocus = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1)

	// Help
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 70 {
		return LayoutNarrow
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 70 columns: panels stacked
	LayoutWide                     // keypad beside history and converter
)
