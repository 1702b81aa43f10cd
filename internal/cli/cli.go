// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and shared command plumbing for circalc.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/logging"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdREPL
	CmdEval
	CmdConvert
	CmdUnits
	CmdConfig
	CmdVersion
	CmdHelp
)

var commandNames = map[Command]string{
	CmdTUI:     "tui",
	CmdREPL:    "repl",
	CmdEval:    "eval",
	CmdConvert: "convert",
	CmdUnits:   "units",
	CmdConfig:  "config",
	CmdVersion: "version",
	CmdHelp:    "help",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool   // Output in JSON format
	NoColor    bool   // Disable colored output
	ConfigPath string // Explicit config file (--config)

	// Command-specific
	Category   string   // --category for convert and units
	Swap       bool     // --swap exchanges the convert units
	Subcommand string   // First argument after the command (config show|get|set)
	Positional []string // Arguments after the command
}

const usageText = `circalc - calculator and unit converter

Usage:
  circalc                          Start the full-screen calculator (default)
  circalc tui                      Start the full-screen calculator
  circalc repl                     Line-mode calculator
  circalc eval <expr>              Evaluate an expression
  circalc <expr>                   Shorthand for eval
  circalc convert <v> <from> <to>  Convert a value between units
    --category NAME                Category to resolve units in
    --swap                         Convert from <to> to <from>
  circalc units [category]         List categories and units
  circalc config [show|get|set|path|keys]
                                   Configuration
  circalc version                  Show version
  circalc help                     Show this help

When stdin is not a terminal, circalc evaluates one expression per line.

Expressions:
  + - * / ^ **  parentheses, unary minus   2+3*4, -2^2, (1+2)*3
  × ÷ π √       keypad glyphs                2×π, √(16)
  constants     %s
  functions     sin cos tan log(x, base) sqrt factorial gcd ...

Units:
  Length, Weight, Temperature, Time, Data (binary multiples)

Global Flags:
  --config PATH   Use this config file
  --json          Output in JSON format (eval, convert)
  --no-color      Disable colors

Examples:
  circalc eval "2+3*4"                  14
  circalc -- -2^2                       -4
  circalc convert 1000 m km             1000.0 meter = 1 kilometer
  circalc convert 32 F C                32.0 Fahrenheit = 0 Celsius
  circalc units data
  circalc config set ui.theme light
  echo "sqrt(2)" | circalc

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, strings.Join(calc.Constants(), " "), Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "circalc version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments (without the program name) and returns
// the command and args. Unrecognized first words are treated as an
// expression for eval.
func Parse(argv []string) (Command, Args) {
	p := NewArgParser(argv)
	args := Args{
		JSON:       p.BoolFlag("json"),
		NoColor:    p.BoolFlag("no-color"),
		ConfigPath: p.Flag("config"),
		Category:   p.Flag("category"),
		Swap:       p.BoolFlag("swap"),
	}

	if p.BoolFlag("help") || p.BoolFlag("h") {
		return CmdHelp, args
	}
	if p.BoolFlag("version") {
		return CmdVersion, args
	}
	if p.PositionalCount() == 0 {
		return CmdTUI, args
	}

	args.Positional = p.PositionalFrom(1)
	args.Subcommand = p.Positional(1)

	switch strings.ToLower(p.Subcommand()) {
	case "tui":
		return CmdTUI, args
	case "repl", "r":
		return CmdREPL, args
	case "eval", "e", "calc":
		return CmdEval, args
	case "convert", "conv", "c":
		return CmdConvert, args
	case "units", "u":
		return CmdUnits, args
	case "config", "cfg":
		return CmdConfig, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	}

	args.Positional = p.PositionalFrom(0)
	args.Subcommand = ""
	return CmdEval, args
}

// =============================================================================
// COMMAND ENVIRONMENT
// =============================================================================

// Env bundles what a command runs against, so commands can be exercised
// without touching the real terminal or filesystem.
type Env struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Fs         afero.Fs
	Config     *config.Config
	ConfigPath string // File config set writes to
	Logger     *slog.Logger
}

// NewEnv returns an Env on the process streams and the OS filesystem.
func NewEnv(cfg *config.Config, logger *slog.Logger) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
		Config: cfg,
		Logger: logger,
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(env *Env, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print(env.Stdout)
	}
	PrintVersion(env.Stdout)
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp(env *Env) error {
	PrintUsage(env.Stdout)
	return nil
}
