// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings of the calculator.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	NextFocus    key.Binding
	PrevFocus    key.Binding
	Evaluate     key.Binding
	Clear        key.Binding
	Backspace    key.Binding
	SquareRoot   key.Binding
	Percent      key.Binding
	PressKey     key.Binding
	Copy         key.Binding
	ToggleKeypad key.Binding
	Recall       key.Binding
	Convert      key.Binding
	Swap         key.Binding
	Cycle        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("?", "help"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next panel"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous panel"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("Enter", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "delete"),
			key.WithHelp("Esc", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("Bksp", "delete"),
		),
		SquareRoot: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "√"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		PressKey: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "press key"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy"),
		),
		ToggleKeypad: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "keypad"),
		),
		Recall: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "recall"),
		),
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "convert"),
		),
		Swap: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "swap units"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "change"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar for a focus.
func (k KeyMap) ShortHelp(f Focus) []key.Binding {
	switch f {
	case FocusHistory:
		return []key.Binding{k.Recall, k.NextFocus, k.Help, k.Quit}
	case FocusConverter:
		return []key.Binding{k.Convert, k.Cycle, k.Swap, k.NextFocus, k.Quit}
	}
	return []key.Binding{k.Evaluate, k.Clear, k.Copy, k.NextFocus, k.Help, k.Quit}
}
