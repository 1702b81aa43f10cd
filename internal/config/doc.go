// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for circalc.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme, keypad and history pane settings
//   - Watcher: fsnotify-based reload notifications
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CIRCALC_*)
//   - ~/.circalc/config.toml
//   - ~/.circalc/config.json
//   - Built-in defaults
//
// All file access goes through an afero.Fs so callers (and tests) choose the
// filesystem.
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load(afero.NewOsFs())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	theme := cfg.UI.Theme
//	marker := cfg.Display.ErrorMarker
package config
