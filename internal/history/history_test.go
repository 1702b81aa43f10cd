// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendOnly(t *testing.T) {
	var l Log
	assert.Equal(t, 0, l.Len())
	_, ok := l.Last()
	assert.False(t, ok)

	assert.Equal(t, 0, l.Append("1+1 = 2"))
	assert.Equal(t, 1, l.Append("2*3 = 6"))

	entries := l.Entries()
	assert.Equal(t, []string{"1+1 = 2", "2*3 = 6"}, entries)

	// Mutating the copy must not reach the log.
	entries[0] = "tampered"
	got, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "1+1 = 2", got)

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "2*3 = 6", last)
}

func TestLog_AtOutOfRange(t *testing.T) {
	l := New()
	l.Append("x")

	_, err := l.At(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.At(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "2+3*4 = 14", FormatEvaluation("2+3*4", "14"))
	assert.Equal(t, "1000.0 meter = 1 kilometer", FormatConversion(1000, "meter", "1", "kilometer"))
	assert.Equal(t, "√(16.0) = 4", FormatSquareRoot(16, "4"))
}

func TestRecall(t *testing.T) {
	tests := []struct {
		entry   string
		want    string
		numeric bool
	}{
		{"2+3*4 = 14", "14", true},
		{"1000.0 meter = 1 kilometer", "1", true},
		{"√(16.0) = 4", "4", true},
		{"32.0 Fahrenheit = 0 Celsius", "0", true},
		{"1.0 kilobyte = 1024 byte", "1024", true},
		{"a = b = 2.50", "2.5", true},
		{"x = hello world", "hello world", false},
		{"x =", "", false},
		{"no equals sign", "no equals sign", false},
	}

	for _, tc := range tests {
		got := Recall(tc.entry)
		assert.Equal(t, tc.want, got.Text, tc.entry)
		assert.Equal(t, tc.numeric, got.Numeric, tc.entry)
	}
}

func TestLog_RecallAt(t *testing.T) {
	l := New()
	l.Append("2+3*4 = 14")

	r, err := l.RecallAt(0)
	require.NoError(t, err)
	assert.Equal(t, "14", r.Text)

	_, err = l.RecallAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
