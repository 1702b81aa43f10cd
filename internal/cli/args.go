// args.go - Argument parsing shared by all CLI commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// booleanFlags never take a value, so "--json 5" leaves 5 positional.
var booleanFlags = map[string]bool{
	"json":     true,
	"no-color": true,
	"swap":     true,
	"help":     true,
	"h":        true,
	"version":  true,
}

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
//
// Negative numbers ("-40", "-.5") are positional, and everything after "--"
// is positional, so expressions such as "-2^2" can be passed unquoted.
type ArgParser struct {
	subcommand string            // First positional arg (e.g., "show", "get")
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--json)
	positional []string          // All positional arguments including subcommand
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"-40", "celsius", "fahrenheit", "--category", "temperature", "--json"})
//	args.Positional(0)        // "-40"
//	args.Flag("category")     // "temperature"
//	args.BoolFlag("json")     // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if arg == "--" {
			parser.positional = append(parser.positional, raw[i+1:]...)
			break
		}

		if !isFlag(arg) {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		// --flag=value
		if name, value, ok := strings.Cut(arg, "="); ok {
			flagName := strings.TrimLeft(name, "-")
			if booleanFlags[flagName] || value == "true" || value == "false" {
				parser.boolFlags[flagName] = value == "true" || value == "1"
			} else {
				parser.flags[flagName] = value
			}
			i++
			continue
		}

		flagName := strings.TrimLeft(arg, "-")
		if !booleanFlags[flagName] && i+1 < len(raw) && !isFlag(raw[i+1]) {
			parser.flags[flagName] = raw[i+1]
			i += 2
			continue
		}
		parser.boolFlags[flagName] = true
		i++
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}
	return parser
}

// isFlag reports whether arg looks like a flag rather than a value. A dash
// followed by a digit or a dot is a negative number.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	return !(c >= '0' && c <= '9') && c != '.' && c != '('
}

// Subcommand returns the first positional argument.
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a string flag, or "" if it was not given.
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// BoolFlag returns the value of a boolean flag, false if not given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// Positional returns the positional argument at index, or "" when out of
// range. Index 0 is the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments starting from index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return []string{}
	}
	return p.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// =============================================================================
// HELPER FUNCTIONS FOR COMMON ARG PATTERNS
// =============================================================================

// ParseIntWithValidation parses a positive integer.
func ParseIntWithValidation(s string, fieldName string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is required", fieldName)
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", fieldName, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", fieldName, val)
	}
	return val, nil
}
