// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI front-ends of
// circalc: one-shot commands, the line-mode REPL and pipe mode.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments
//   - Env: The streams, filesystem, logger and config a command runs against
//   - JSONResponse: Machine-readable output for --json
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	env := cli.NewEnv(cfg, logger)
//	switch cmd {
//	case cli.CmdEval:
//	    err = cli.HandleEval(env, args)
//	case cli.CmdREPL:
//	    err = cli.HandleREPL(env, args)
//	}
//
// # Commands Overview
//
//   - tui: Full-screen keypad, history and converter (default)
//   - repl: Line-mode calculator with editing and in-memory history
//   - eval: Evaluate one expression
//   - convert: Convert a value between units
//   - units: List categories and units
//   - config: Show, get and set configuration
//
// eval and convert support --json.
package cli
