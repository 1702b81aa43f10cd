// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an entry index does not exist.
var ErrIndexOutOfRange = errors.New("history index out of range")

// Log is an append-only ordered list of formatted entries. Entries are never
// modified or removed. The zero value is an empty log ready for use.
type Log struct {
	entries []string
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append adds entry to the end of the log and returns its index.
func (l *Log) Append(entry string) int {
	l.entries = append(l.entries, entry)
	return len(l.entries) - 1
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *Log) At(i int) (string, error) {
	if i < 0 || i >= len(l.entries) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(l.entries))
	}
	return l.entries[i], nil
}

// Last returns the most recent entry.
func (l *Log) Last() (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}
	return l.entries[len(l.entries)-1], true
}

// Entries returns a copy of all entries in insertion order.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}
