// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the circalc TUI.

Each component owns only presentation state (cursor, selection, scroll
offset). Calculator state lives in session.Session; components report user
intent back to the app as messages:

	KeyPressedMsg     - a keypad button was activated
	RecallMsg         - a history entry should go back on the display
	ConvertRequestMsg - the converter value should be converted
	ClearStatusMsg    - a transient status message expired

Components:

	Keypad         - grid of round buttons with cursor and mouse support
	Display        - right-aligned expression line
	HistoryList    - scrollable history (bubbles/viewport)
	ConverterPanel - category and unit cyclers plus a value field
	HelpOverlay    - key reference rendered with glamour
	StatusBar      - short key help (bubbles/help) and status messages
*/
package components
