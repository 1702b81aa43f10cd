// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0600))

	w, err := NewWatcher(afero.NewOsFs(), path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0600))

	select {
	case ev := <-w.Events():
		require.NoError(t, ev.Err)
		assert.Equal(t, "light", ev.Config.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}

func TestWatcher_ReportsInvalidConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w, err := NewWatcher(afero.NewOsFs(), path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	select {
	case ev := <-w.Events():
		assert.Error(t, ev.Err)
		assert.Nil(t, ev.Config)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}

func TestWatcher_CloseClosesEvents(t *testing.T) {
	w, err := NewWatcher(afero.NewOsFs(), filepath.Join(t.TempDir(), "config.toml"), time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok)
}
