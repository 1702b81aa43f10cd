// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/logging"
	"github.com/jeranaias/circalc/internal/session"
	"github.com/jeranaias/circalc/internal/ui/components"
	"github.com/jeranaias/circalc/internal/ui/styles"
	"github.com/jeranaias/circalc/internal/units"
)

// Focus is the panel receiving keyboard input.
type Focus int

const (
	FocusCalculator Focus = iota
	FocusHistory
	FocusConverter
	focusCount
)

// String returns the panel name shown in the status bar.
func (f Focus) String() string {
	switch f {
	case FocusCalculator:
		return "calculator"
	case FocusHistory:
		return "history"
	case FocusConverter:
		return "converter"
	}
	return "?"
}

// converterRows is the height of the converter panel content.
const converterRows = 6

// Model is the bubbletea model of the full-screen calculator.
type Model struct {
	session *session.Session
	cfg     *config.Config
	theme   *styles.Theme
	keys    KeyMap
	logger  *slog.Logger

	keypad    *components.Keypad
	display   *components.Display
	history   *components.HistoryList
	converter *components.ConverterPanel
	help      *components.HelpOverlay
	status    *components.StatusBar

	focus      Focus
	showKeypad bool
	vimKeys    bool

	width, height int
	layout        layout

	reloads   <-chan config.ReloadEvent
	writeClip func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithReloadEvents subscribes the model to config reloads.
func WithReloadEvents(events <-chan config.ReloadEvent) Option {
	return func(m *Model) {
		m.reloads = events
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.writeClip = write
		}
	}
}

// New creates the model for cfg.
func New(cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &Model{
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		logger:    logging.Discard(),
		writeClip: clipboard.WriteAll,
		width:     80,
		height:    24,
	}
	for _, opt := range opts {
		opt(m)
	}

	sessOpts := []session.Option{
		session.WithLogger(m.logger),
		session.WithErrorMarker(cfg.Display.ErrorMarker),
	}
	if cat, err := units.ParseCategory(cfg.Converter.DefaultCategory); err == nil {
		sessOpts = append(sessOpts, session.WithCategory(cat))
	}
	m.session = session.New(sessOpts...)

	m.theme = styles.NewTheme(cfg.UI.Theme)
	m.keypad = components.NewKeypad(m.theme)
	m.display = components.NewDisplay(m.theme, m.width-2)
	m.history = components.NewHistoryList(m.theme, 30, cfg.UI.HistoryHeight)
	m.converter = components.NewConverterPanel(m.theme, m.session.Converter(), 30)
	m.help = components.NewHelpOverlay(m.theme)
	m.status = components.NewStatusBar(m.theme)

	m.showKeypad = cfg.UI.ShowKeypad
	m.vimKeys = cfg.UI.VimKeys
	m.setFocus(FocusCalculator)
	m.relayout()
	m.sync()
	return m
}

// Session returns the calculator session.
func (m *Model) Session() *session.Session {
	return m.session
}

// Focus returns the focused panel.
func (m *Model) Focus() Focus {
	return m.focus
}

// Init starts listening for config reloads.
func (m *Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// sync copies session state into the components.
func (m *Model) sync() {
	m.display.SetText(m.session.Display(), m.session.Errored())
	m.display.SetAnswer(m.session.LastAnswer())
	m.history.SetEntries(m.session.History().Entries())
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = Focus(((int(f) % int(focusCount)) + int(focusCount)) % int(focusCount))
	m.status.SetFocus(m.focus.String())
	if m.focus == FocusConverter {
		return m.converter.Focus()
	}
	m.converter.Blur()
	return nil
}

// applyConfig applies a reloaded config. The session keeps its state; only
// presentation settings and the error marker change.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.theme = styles.NewTheme(cfg.UI.Theme)
	m.keypad.SetTheme(m.theme)
	m.display.SetTheme(m.theme)
	m.history.SetTheme(m.theme)
	m.converter.SetTheme(m.theme)
	m.help.SetTheme(m.theme)
	m.status.SetTheme(m.theme)

	m.showKeypad = cfg.UI.ShowKeypad
	m.vimKeys = cfg.UI.VimKeys
	m.session.SetErrorMarker(cfg.Display.ErrorMarker)
	m.relayout()
	m.sync()
}

// Run starts the full-screen program and blocks until it exits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
