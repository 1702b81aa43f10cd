// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/ui/components"
)

func newTestModel(t *testing.T, cfg *config.Config, opts ...Option) *Model {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.UI.Theme = "dark"
	m := New(cfg, opts...)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
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

// =============================================================================
// CALCULATOR
// =============================================================================

func TestTypeAndEvaluate(t *testing.T) {
	m := newTestModel(t, nil)

	typeText(m, "2+3*4")
	assert.Equal(t, "2+3*4", m.display.Text())

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "14", m.display.Text())
	assert.Equal(t, []string{"2+3*4 = 14"}, m.Session().History().Entries())
	assert.Equal(t, 1, m.history.Len())
}

func TestEqualsKeyEvaluates(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "√(16)=")
	assert.Equal(t, "4", m.display.Text())
}

func TestEvaluationErrorShowsMarker(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "1/0")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Error", m.display.Text())
	msg, isErr := m.status.Message()
	assert.True(t, isErr)
	assert.Contains(t, msg, "division by zero")

	// The next input starts a new expression.
	typeText(m, "7")
	assert.Equal(t, "7", m.display.Text())
}

func TestEditingKeys(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "123")
	send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.display.Text())

	typeText(m, "%")
	assert.Equal(t, "0.12", m.display.Text())

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.display.Line()[len(m.display.Line())-1:])
	assert.Equal(t, "", m.Session().Expression())

	typeText(m, "81")
	send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "9", m.display.Text())
	assert.Equal(t, "9", m.Session().LastAnswer())
}

func TestKeypadPressedMsg(t *testing.T) {
	m := newTestModel(t, nil)
	for _, label := range []string{"7", "×", "π", "="} {
		send(m, components.KeyPressedMsg{Label: label})
	}
	assert.Equal(t, "21.9911485751", m.display.Text())
}

func TestKeypadNavigationAndSpace(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(m, tea.KeyMsg{Type: tea.KeySpace})

	msgs := collect(cmd)
	require.Contains(t, msgs, components.KeyPressedMsg{Label: "7"})
	for _, msg := range msgs {
		send(m, msg)
	}
	assert.Equal(t, "7", m.display.Text())
}

func TestVimKeysMoveKeypad(t *testing.T) {
	cfg := config.Default()
	cfg.UI.VimKeys = true
	m := newTestModel(t, cfg)

	typeText(m, "jl")
	row, col := m.keypad.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, "", m.Session().Expression())
}

func TestMouseClickOnKeypad(t *testing.T) {
	m := newTestModel(t, nil)
	require.True(t, m.layout.wide)

	// Second row, first column is "7".
	cmd := send(m, tea.MouseMsg{X: m.layout.keypadX + 1, Y: m.layout.keypadY + 3 + 1, Type: tea.MouseLeft})
	for _, msg := range collect(cmd) {
		send(m, msg)
	}
	assert.Equal(t, "7", m.display.Text())
}

// =============================================================================
// FOCUS, HISTORY AND CONVERTER
// =============================================================================

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, FocusCalculator, m.Focus())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusHistory, m.Focus())
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusConverter, m.Focus())
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusCalculator, m.Focus())
	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusConverter, m.Focus())
}

func TestHistoryRecall(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "2+3*4")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "+1")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.display.Text())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	send(m, tea.KeyMsg{Type: tea.KeyUp})
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	require.Equal(t, []tea.Msg{components.RecallMsg{Index: 0}}, msgs)

	send(m, msgs[0])
	assert.Equal(t, "14", m.display.Text())
	assert.Equal(t, "14", m.Session().LastAnswer())
}

func TestRecallOutOfRange(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, components.RecallMsg{Index: 3})
	_, isErr := m.status.Message()
	assert.True(t, isErr)
}

func TestConverterFlow(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, FocusConverter, m.Focus())

	typeText(m, "1000")
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range collect(cmd) {
		send(m, msg)
	}

	result, failed := m.converter.Result()
	assert.False(t, failed)
	assert.Equal(t, "1 kilometer", result)
	assert.Equal(t, []string{"1000.0 meter = 1 kilometer"}, m.Session().History().Entries())
	assert.Equal(t, "1", m.Session().LastAnswer())
}

func TestConverterError(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, components.ConvertRequestMsg{Value: ""})
	result, failed := m.converter.Result()
	assert.True(t, failed)
	assert.Equal(t, "Enter value", result)
	assert.Empty(t, m.Session().History().Entries())
}

func TestDefaultCategoryFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Converter.DefaultCategory = "Temperature"
	m := newTestModel(t, cfg)
	assert.Equal(t, "Celsius", m.Session().Converter().From())
	assert.Equal(t, "Fahrenheit", m.Session().Converter().To())
}

// =============================================================================
// CLIPBOARD, HELP, RELOAD
// =============================================================================

func TestCopyToClipboard(t *testing.T) {
	var copied string
	m := newTestModel(t, nil, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	typeText(m, "6*7")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	send(m, cmd())
	assert.Equal(t, "42", copied)
	msg, isErr := m.status.Message()
	assert.False(t, isErr)
	assert.Contains(t, msg, "copied")
}

func TestCopyFailure(t *testing.T) {
	m := newTestModel(t, nil, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	send(m, cmd())
	_, isErr := m.status.Message()
	assert.True(t, isErr)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	typeText(m, "?")
	assert.True(t, m.help.Visible())
	assert.Equal(t, "", m.Session().Expression())

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.help.Visible())
}

func TestToggleKeypad(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Contains(t, m.View(), "Keypad")

	send(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.False(t, m.showKeypad)
	assert.False(t, m.layout.wide)
	assert.NotContains(t, m.View(), "Keypad")
}

func TestConfigReload(t *testing.T) {
	events := make(chan config.ReloadEvent, 1)
	m := newTestModel(t, nil, WithReloadEvents(events))
	require.NotNil(t, m.Init())

	typeText(m, "1/0")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	cfg := config.Default()
	cfg.UI.Theme = "light"
	cfg.UI.ShowKeypad = false
	cfg.Display.ErrorMarker = "ERR"
	events <- config.ReloadEvent{Config: cfg}

	msg := m.Init()()
	require.IsType(t, ConfigReloadedMsg{}, msg)
	send(m, msg)

	assert.False(t, m.showKeypad)
	assert.False(t, m.theme.IsDark)
	assert.Equal(t, "ERR", m.display.Text())
	status, _ := m.status.Message()
	assert.Equal(t, "config reloaded", status)
}

func TestConfigReloadError(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, ConfigReloadedMsg{Event: config.ReloadEvent{Err: errors.New("bad toml")}})
	status, isErr := m.status.Message()
	assert.True(t, isErr)
	assert.Contains(t, status, "bad toml")
	assert.True(t, m.showKeypad)
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	for _, s := range []string{"circalc", "Keypad", "History", "Converter", "No calculations yet", "ANS"} {
		assert.Contains(t, view, s)
	}

	send(m, tea.WindowSizeMsg{Width: 50, Height: 60})
	assert.False(t, m.layout.wide)
	assert.Contains(t, m.View(), "Keypad")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
