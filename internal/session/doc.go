// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the calculator's application state: the expression
// being built, the last answer, the history log and the converter selection.
//
// A Session is owned by a single event loop (the TUI Update loop or the REPL)
// and is not safe for concurrent use.
//
// # Key Types
//
//   - Session: the state struct and its keypad operations
//   - Outcome: what a key press did, for the front-end to react to
//
// # Usage
//
//	s := session.New(session.WithLogger(logger))
//	s.Type("2+3*4")
//	out := s.Press(session.KeyEquals)
//	fmt.Println(out.Display) // 14
package session
