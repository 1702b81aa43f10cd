// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the structured logger shared by the CLI and TUI.
//
// The full-screen UI owns the terminal, so logs never go to stdout: they are
// either written as JSON lines to the configured file or discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jeranaias/circalc/internal/config"
)

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup builds a JSON logger for cfg and installs it as the slog default.
// The returned close func releases the log file and is always non-nil.
func Setup(fs afero.Fs, cfg config.LoggingConfig) (*slog.Logger, func() error, error) {
	level, ok := ParseLevel(cfg.Level)

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if cfg.File != "" {
		if err := fs.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, closeFn, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := fs.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := New(w, level)
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return logger, closeFn, nil
}

// New returns a JSON logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
