// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/circalc/internal/config"
)

const configUsage = "circalc config [show|get KEY|set KEY VALUE|path|keys]"

// HandleConfig handles the "config" command and its subcommands.
func HandleConfig(env *Env, args Args) error {
	switch args.Subcommand {
	case "", "show":
		return showConfig(env)

	case "get":
		if len(args.Positional) < 2 {
			return ErrMissingArgument("config get", "key", configUsage)
		}
		v, err := env.Config.Get(args.Positional[1])
		if err != nil {
			return &NotFoundError{Resource: "config key", ID: args.Positional[1]}
		}
		fmt.Fprintln(env.Stdout, v)
		return nil

	case "set":
		if len(args.Positional) < 3 {
			return ErrMissingArgument("config set", "key and value", configUsage)
		}
		return setConfig(env, args.Positional[1], args.Positional[2])

	case "path":
		path, err := configPath(env)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, path)
		return nil

	case "keys":
		for _, key := range config.GetAllKeys() {
			fmt.Fprintln(env.Stdout, key)
		}
		return nil
	}

	return &UsageError{Command: "config", Reason: fmt.Sprintf("unknown subcommand %q", args.Subcommand), Usage: configUsage}
}

func showConfig(env *Env) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(env.Config); err != nil {
		return &CommandError{Command: "config", Action: "show", Reason: "could not encode config", Err: err}
	}
	_, err := env.Stdout.Write(buf.Bytes())
	return err
}

// setConfig updates one key, validates the result and saves it. The change
// is applied to a copy so an invalid value never reaches env.Config.
func setConfig(env *Env, key, value string) error {
	updated := env.Config.Clone()
	if err := updated.Set(key, value); err != nil {
		return &CommandError{Command: "config", Action: "set", Reason: key, Err: err}
	}
	updated.SetDefaults()
	if err := updated.Validate(); err != nil {
		return err
	}

	path, err := configPath(env)
	if err != nil {
		return err
	}
	if err := config.SaveTOML(env.Fs, updated, path); err != nil {
		return &CommandError{Command: "config", Action: "set", Reason: "could not save", Err: err}
	}

	*env.Config = *updated
	env.Logger.Info("config updated", "key", key, "path", path)
	fmt.Fprintf(env.Stdout, "%s = %s\n", key, value)
	return nil
}

func configPath(env *Env) (string, error) {
	if env.ConfigPath != "" {
		return env.ConfigPath, nil
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return "", &CommandError{Command: "config", Action: "path", Reason: "no config directory", Err: err}
	}
	return path, nil
}
