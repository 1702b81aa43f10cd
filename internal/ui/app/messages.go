// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/circalc/internal/config"
)

// ConfigReloadedMsg carries a config file change into the event loop.
type ConfigReloadedMsg struct {
	Event config.ReloadEvent
}

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	text string
	err  error
}

// waitForReload blocks until the watcher delivers the next event.
func waitForReload(events <-chan config.ReloadEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Event: ev}
	}
}

// copyCmd writes text to the clipboard off the event loop.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}
