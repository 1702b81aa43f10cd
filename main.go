// circalc - calculator and unit converter for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/jeranaias/circalc/internal/cli"
	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/logging"
	"github.com/jeranaias/circalc/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 250 * time.Millisecond

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])
	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	os.Exit(run(cmd, args))
}

func run(cmd cli.Command, args cli.Args) int {
	fs := afero.NewOsFs()

	cfg, err := loadConfig(fs, args.ConfigPath)
	if cfg == nil {
		cli.DisplayError(os.Stderr, err, args.JSON)
		return cli.GetExitCode(err)
	}

	logger, closeLog, logErr := logging.Setup(fs, cfg.Logging)
	defer closeLog()
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", logErr)
		logger = logging.Discard()
	}
	if err != nil {
		// The file was unreadable; defaults are in use.
		logger.Warn("config not loaded, using defaults", "error", err)
		if cmd != cli.CmdTUI {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	env := cli.NewEnv(cfg, logger)
	env.ConfigPath = args.ConfigPath

	if err := dispatch(cmd, env, args); err != nil {
		cli.DisplayError(os.Stderr, err, args.JSON)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}

// loadConfig reads an explicit config file, or the default locations. A
// nil config means the error is fatal.
func loadConfig(fs afero.Fs, path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(fs, path)
	}
	return config.Load(fs)
}

func dispatch(cmd cli.Command, env *cli.Env, args cli.Args) error {
	switch cmd {
	case cli.CmdTUI:
		if !cli.IsReaderTTY(env.Stdin) {
			return cli.RunPipe(env, args)
		}
		return runTUI(env)
	case cli.CmdREPL:
		return cli.HandleREPL(env, args)
	case cli.CmdEval:
		return cli.HandleEval(env, args)
	case cli.CmdConvert:
		return cli.HandleConvert(env, args)
	case cli.CmdUnits:
		return cli.HandleUnits(env, args)
	case cli.CmdConfig:
		return cli.HandleConfig(env, args)
	case cli.CmdVersion:
		return cli.HandleVersion(env, args)
	default:
		return cli.HandleHelp(env)
	}
}

func runTUI(env *cli.Env) error {
	opts := []app.Option{app.WithLogger(env.Logger)}

	if w := watchConfig(env); w != nil {
		defer w.Close()
		opts = append(opts, app.WithReloadEvents(w.Events()))
	}

	env.Logger.Info("starting tui", "version", Version, "theme", env.Config.UI.Theme)
	return app.Run(app.New(env.Config, opts...))
}

// watchConfig watches the active config file. It returns nil when there is
// no file yet or the watcher cannot start; the TUI runs without reloads.
func watchConfig(env *cli.Env) *config.Watcher {
	path := env.ConfigPath
	if path == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return nil
		}
		path = p
	}
	if ok, _ := afero.Exists(env.Fs, path); !ok {
		return nil
	}

	w, err := config.NewWatcher(env.Fs, path, reloadDebounce)
	if err != nil {
		env.Logger.Warn("config watcher unavailable", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	return w
}
