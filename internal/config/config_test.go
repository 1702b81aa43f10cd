// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/home/test/.circalc"

// isolate points the config dir at testDir and clears every override.
func isolate(t *testing.T) afero.Fs {
	t.Helper()
	t.Setenv("CIRCALC_CONFIG_DIR", testDir)
	for _, key := range []string{"CIRCALC_THEME", "CIRCALC_NO_KEYPAD", "CIRCALC_CATEGORY", "CIRCALC_LOG_LEVEL", "CIRCALC_LOG_FILE"} {
		t.Setenv(key, "")
	}
	return afero.NewMemMapFs()
}

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowKeypad)
	assert.Equal(t, 8, cfg.UI.HistoryHeight)
	assert.Equal(t, "Length", cfg.Converter.DefaultCategory)
	assert.Equal(t, "Error", cfg.Display.ErrorMarker)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	fs := isolate(t)

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	fs := isolate(t)
	content := `
[ui]
theme = "dark"
show_keypad = false

[converter]
default_category = "temperature"
`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.UI.ShowKeypad)
	assert.Equal(t, "temperature", cfg.Converter.DefaultCategory)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 8, cfg.UI.HistoryHeight)
	assert.Equal(t, "Error", cfg.Display.ErrorMarker)
}

func TestLoad_JSONFallback(t *testing.T) {
	fs := isolate(t)
	content := `{"display": {"error_marker": "ERR"}, "logging": {"level": "DEBUG"}}`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.json"), []byte(content), 0600))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "ERR", cfg.Display.ErrorMarker)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_BrokenFileReturnsDefaults(t *testing.T) {
	fs := isolate(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.toml"), []byte("[ui\ntheme="), 0600))

	cfg, err := Load(fs)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "auto", cfg.UI.Theme)
}

func TestLoad_InvalidValues(t *testing.T) {
	fs := isolate(t)
	content := `
[ui]
theme = "neon"
history_height = 1

[converter]
default_category = "Volume"
`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(fs)
	assert.Nil(t, cfg)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"ui.theme", "ui.history_height", "converter.default_category"}, fields)
	assert.Contains(t, err.Error(), "must be one of: auto, dark, light")
}

func TestLoad_EnvOverrides(t *testing.T) {
	fs := isolate(t)
	t.Setenv("CIRCALC_THEME", "light")
	t.Setenv("CIRCALC_NO_KEYPAD", "1")
	t.Setenv("CIRCALC_CATEGORY", "Data")
	t.Setenv("CIRCALC_LOG_LEVEL", "warn")
	t.Setenv("CIRCALC_LOG_FILE", "/tmp/circalc.log")

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.ShowKeypad)
	assert.Equal(t, "Data", cfg.Converter.DefaultCategory)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/circalc.log", cfg.Logging.File)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	fs := isolate(t)
	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.UI.VimKeys = true
	cfg.Converter.DefaultCategory = "Weight"

	require.NoError(t, Save(fs, cfg))

	data, err := afero.ReadFile(fs, filepath.Join(testDir, "config.toml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# circalc configuration file"))

	loaded, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	fs := isolate(t)
	path := filepath.Join(testDir, "config.json")
	cfg := Default()
	cfg.Display.ErrorMarker = "?"

	require.NoError(t, SaveJSON(fs, cfg, path))
	loaded, err := LoadFromPath(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "?", loaded.Display.ErrorMarker)
}

// =============================================================================
// GET/SET TESTS
// =============================================================================

func TestGetSet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "auto", v)

	require.NoError(t, cfg.Set("ui.history_height", "12"))
	assert.Equal(t, 12, cfg.UI.HistoryHeight)

	require.NoError(t, cfg.Set("ui.show_keypad", "false"))
	assert.False(t, cfg.UI.ShowKeypad)

	require.NoError(t, cfg.Set("display.error_marker", "E"))
	assert.Equal(t, "E", cfg.Display.ErrorMarker)

	require.NoError(t, cfg.Set("ui.history_height", 20))
	assert.Equal(t, 20, cfg.UI.HistoryHeight)
}

func TestGetSet_Errors(t *testing.T) {
	cfg := Default()

	_, err := cfg.Get("")
	assert.Error(t, err)
	_, err = cfg.Get("ui.nope")
	assert.ErrorContains(t, err, "unknown field: ui.nope")
	_, err = cfg.Get("ui")
	assert.ErrorContains(t, err, "section")
	_, err = cfg.Get("ui.theme.x")
	assert.ErrorContains(t, err, "not a struct")

	assert.Error(t, cfg.Set("ui.history_height", "many"))
	assert.Error(t, cfg.Set("ui.vim_keys", "maybe"))
	assert.Error(t, cfg.Set("ui.theme", 3))
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.UI.Theme = "dark"
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Contains(t, cfg.String(), `"theme": "auto"`)
}
