// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/jeranaias/circalc/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete circalc configuration.
type Config struct {
	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Converter configuration
	Converter ConverterConfig `toml:"converter" json:"converter"`

	// Display configuration
	Display DisplayConfig `toml:"display" json:"display"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme" validate:"oneof=auto dark light"`
	// ShowKeypad shows the on-screen keypad in the TUI
	ShowKeypad bool `toml:"show_keypad" json:"show_keypad"`
	// HistoryHeight is the number of history rows shown
	HistoryHeight int `toml:"history_height" json:"history_height" validate:"gte=3,lte=100"`
	// VimKeys enables hjkl navigation on the keypad and history
	VimKeys bool `toml:"vim_keys" json:"vim_keys"`
}

// ConverterConfig contains unit converter configuration.
type ConverterConfig struct {
	// DefaultCategory is the category selected at startup
	DefaultCategory string `toml:"default_category" json:"default_category" validate:"category"`
}

// DisplayConfig contains calculator display configuration.
type DisplayConfig struct {
	// ErrorMarker replaces the display after a failed evaluation
	ErrorMarker string `toml:"error_marker" json:"error_marker" validate:"required,max=16"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level" validate:"oneof=debug info warn error"`
	// File is the log file path; empty discards logs
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:         "auto",
			ShowKeypad:    true,
			HistoryHeight: 8,
			VimKeys:       false,
		},
		Converter: ConverterConfig{
			DefaultCategory: "Length",
		},
		Display: DisplayConfig{
			ErrorMarker: "Error",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the circalc configuration directory path. CIRCALC_CONFIG_DIR
// overrides the default of ~/.circalc.
func ConfigDir() (string, error) {
	if dir := os.Getenv("CIRCALC_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".circalc"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s) on fs.
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last. A file that fails to decode is
// reported alongside the defaults so the caller can warn and carry on.
func Load(fs afero.Fs) (*Config, error) {
	var loadErr error

	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		exists, err := afero.Exists(fs, path)
		if err != nil || !exists {
			continue
		}
		cfg, err := LoadFromPath(fs, path)
		if err == nil {
			return cfg, nil
		}
		var verrs ValidateErrors
		if errors.As(err, &verrs) {
			return nil, err
		}
		if loadErr == nil {
			loadErr = err
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(fs afero.Fs, cfg *Config, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read TOML file: %w", err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(fs afero.Fs, cfg *Config, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Keys missing from the file keep their default values.
func LoadFromPath(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(fs, cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(fs, cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SetDefaults fills values that must never be empty.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.HistoryHeight == 0 {
		c.UI.HistoryHeight = defaults.UI.HistoryHeight
	}
	if c.Converter.DefaultCategory == "" {
		c.Converter.DefaultCategory = defaults.Converter.DefaultCategory
	}
	if c.Display.ErrorMarker == "" {
		c.Display.ErrorMarker = defaults.Display.ErrorMarker
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(fs afero.Fs, cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(fs, cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(fs afero.Fs, cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# circalc configuration file")
	fmt.Fprintln(&buf, "# Generated by circalc - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(fs, path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(fs afero.Fs, cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(fs, path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - CIRCALC_THEME: overrides ui.theme
//   - CIRCALC_NO_KEYPAD: hides the keypad when "1" or "true"
//   - CIRCALC_CATEGORY: overrides converter.default_category
//   - CIRCALC_LOG_LEVEL: overrides logging.level
//   - CIRCALC_LOG_FILE: overrides logging.file
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("CIRCALC_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if noKeypad := os.Getenv("CIRCALC_NO_KEYPAD"); noKeypad != "" {
		c.UI.ShowKeypad = !(noKeypad == "1" || strings.ToLower(noKeypad) == "true")
	}
	if category := os.Getenv("CIRCALC_CATEGORY"); category != "" {
		c.Converter.DefaultCategory = category
	}
	if level := os.Getenv("CIRCALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("CIRCALC_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
// String values are converted to the field's type. The result is not
// validated; call Validate before saving.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strings.ToLower(strVal))
			if err != nil {
				boolVal = strings.ToLower(strVal) == "yes"
				if !boolVal && strings.ToLower(strVal) != "no" {
					return fmt.Errorf("invalid boolean value: %q", strVal)
				}
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String && field.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"ui.theme",
		"ui.show_keypad",
		"ui.history_height",
		"ui.vim_keys",
		"converter.default_category",
		"display.error_marker",
		"logging.level",
		"logging.file",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a JSON representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
