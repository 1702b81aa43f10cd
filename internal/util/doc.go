// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the CLI and the TUI.
//
// # Key Functions
//
// String Utilities:
//   - Truncate: display-width aware truncation with ellipsis
//   - PadLeft: right-align text within a display width
//   - NormalizeInput: fold typed text so full-width digits and operators work
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync on any afero.Fs
//
// # Usage
//
//	// Right-align the calculator display
//	line := util.PadLeft(display, width)
//
//	// Write the config file atomically
//	err := util.AtomicWriteFile(afero.NewOsFs(), path, data, 0600)
package util
