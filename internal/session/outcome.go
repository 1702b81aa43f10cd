// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// Action identifies what an operation did to the session.
type Action int

const (
	ActionNone Action = iota
	ActionAppend
	ActionClear
	ActionBackspace
	ActionEvaluate
	ActionSquareRoot
	ActionPercent
	ActionRecall
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionAppend:     "append",
	ActionClear:      "clear",
	ActionBackspace:  "backspace",
	ActionEvaluate:   "evaluate",
	ActionSquareRoot: "sqrt",
	ActionPercent:    "percent",
	ActionRecall:     "recall",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Outcome reports the result of an operation.
type Outcome struct {
	Action  Action
	Display string // Display text after the operation
	Entry   string // History entry added, if any
	Err     error  // Set when the operation failed and the display shows the marker
}

// Failed reports whether the operation failed.
func (o Outcome) Failed() bool { return o.Err != nil }
