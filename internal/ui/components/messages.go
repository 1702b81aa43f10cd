// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// KeyPressedMsg reports a keypad button activation by keyboard or mouse.
type KeyPressedMsg struct {
	Label string
}

// RecallMsg asks for history entry Index to be redisplayed.
type RecallMsg struct {
	Index int
}

// ConvertRequestMsg asks the app to convert Value with the current
// selection.
type ConvertRequestMsg struct {
	Value string
}

// ClearStatusMsg expires the status message with the same sequence number.
type ClearStatusMsg struct {
	Seq int
}

// keyReleaseMsg ends the pressed highlight of a keypad button.
type keyReleaseMsg struct {
	seq int
}
