// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/units"
)

// ConverterField is the focused row of the converter panel.
type ConverterField int

const (
	FieldValue ConverterField = iota
	FieldCategory
	FieldFrom
	FieldTo
	fieldCount
)

// String returns the row label.
func (f ConverterField) String() string {
	switch f {
	case FieldValue:
		return "Value"
	case FieldCategory:
		return "Category"
	case FieldFrom:
		return "From"
	case FieldTo:
		return "To"
	}
	return "?"
}

// ConverterPanel edits the unit selection and the value to convert. The
// selection is shared with the session; the panel only changes it through
// its methods.
type ConverterPanel struct {
	theme *styles.Theme
	sel   *units.Selection
	input textinput.Model
	field ConverterField
	width int

	focused bool
	result  string
	failed  bool
}

// NewConverterPanel creates a panel editing sel.
func NewConverterPanel(theme *styles.Theme, sel *units.Selection, width int) *ConverterPanel {
	input := textinput.New()
	input.Placeholder = "value"
	input.Prompt = ""
	input.CharLimit = 32

	p := &ConverterPanel{theme: theme, sel: sel, input: input}
	p.SetWidth(width)
	return p
}

// SetTheme swaps the theme.
func (p *ConverterPanel) SetTheme(theme *styles.Theme) {
	p.theme = theme
}

// SetWidth sets the panel content width.
func (p *ConverterPanel) SetWidth(width int) {
	p.width = width
	if w := width - 10; w > 4 {
		p.input.Width = w
	}
}

// Focus gives the panel keyboard focus.
func (p *ConverterPanel) Focus() tea.Cmd {
	p.focused = true
	if p.field == FieldValue {
		return p.input.Focus()
	}
	return nil
}

// Blur removes keyboard focus.
func (p *ConverterPanel) Blur() {
	p.focused = false
	p.input.Blur()
}

// Field returns the focused row.
func (p *ConverterPanel) Field() ConverterField {
	return p.field
}

// SetField focuses a row.
func (p *ConverterPanel) SetField(f ConverterField) tea.Cmd {
	p.field = ConverterField(wrap(int(f), int(fieldCount)))
	if p.field == FieldValue && p.focused {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

// Value returns the typed value text.
func (p *ConverterPanel) Value() string {
	return p.input.Value()
}

// SetValue replaces the value text.
func (p *ConverterPanel) SetValue(v string) {
	p.input.SetValue(v)
	p.input.CursorEnd()
}

// SetResult shows the outcome of the last conversion.
func (p *ConverterPanel) SetResult(text string, failed bool) {
	p.result = text
	p.failed = failed
}

// Result returns the shown conversion result.
func (p *ConverterPanel) Result() (string, bool) {
	return p.result, p.failed
}

// Update handles keys while the panel has focus. Up and down move between
// rows; left and right cycle the category or a unit; enter converts.
func (p *ConverterPanel) Update(msg tea.Msg) (*ConverterPanel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.field == FieldValue {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	switch key.String() {
	case "up":
		return p, p.SetField(p.field - 1)
	case "down":
		return p, p.SetField(p.field + 1)
	case "enter":
		return p, p.request()
	case "ctrl+s":
		p.sel.Swap()
		return p, nil
	}

	if p.field == FieldValue {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	delta := 0
	switch key.String() {
	case "left", "h":
		delta = -1
	case "right", "l", " ":
		delta = 1
	}
	if delta == 0 {
		return p, nil
	}
	switch p.field {
	case FieldCategory:
		p.sel.CycleCategory(delta)
	case FieldFrom:
		p.sel.CycleFrom(delta)
	case FieldTo:
		p.sel.CycleTo(delta)
	}
	return p, nil
}

func (p *ConverterPanel) request() tea.Cmd {
	value := p.input.Value()
	return func() tea.Msg { return ConvertRequestMsg{Value: value} }
}

// View renders the panel rows.
func (p *ConverterPanel) View() string {
	rows := []string{
		p.row(FieldValue, p.input.View()),
		p.row(FieldCategory, p.cycler(FieldCategory, p.sel.Category().String())),
		p.row(FieldFrom, p.cycler(FieldFrom, p.sel.From())),
		p.row(FieldTo, p.cycler(FieldTo, p.sel.To())),
		"",
		p.resultLine(),
	}
	return strings.Join(rows, "\n")
}

func (p *ConverterPanel) row(f ConverterField, content string) string {
	marker := "  "
	if p.focused && p.field == f {
		marker = "> "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, p.theme.Label.Render(f.String()), content)
}

func (p *ConverterPanel) cycler(f ConverterField, value string) string {
	text := "< " + value + " >"
	if p.focused && p.field == f {
		return p.theme.CyclerFocused.Render(text)
	}
	return p.theme.Cycler.Render(text)
}

func (p *ConverterPanel) resultLine() string {
	switch {
	case p.result == "":
		return p.theme.ConvertPending.Render("  enter a value and press Enter")
	case p.failed:
		return "  " + p.theme.ConvertError.Render(p.result)
	default:
		return "  = " + p.theme.ConvertResult.Render(p.result)
	}
}
