// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/logging"
	"github.com/jeranaias/circalc/internal/units"
)

func TestMain(m *testing.M) {
	ForceColorsEnabled(false)
	os.Exit(m.Run())
}

// testEnv returns an Env on in-memory streams and filesystem.
func testEnv(stdin string) (*Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Env{
		Stdin:      strings.NewReader(stdin),
		Stdout:     &stdout,
		Stderr:     &stderr,
		Fs:         afero.NewMemMapFs(),
		Config:     config.Default(),
		ConfigPath: "/home/test/.circalc/config.toml",
		Logger:     logging.Discard(),
	}, &stdout, &stderr
}

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

func TestArgParser_NegativeNumbersArePositional(t *testing.T) {
	p := NewArgParser([]string{"convert", "-40", "C", "F", "--category", "temperature", "--json"})

	assert.Equal(t, "convert", p.Subcommand())
	assert.Equal(t, []string{"-40", "C", "F"}, p.PositionalFrom(1))
	assert.Equal(t, "temperature", p.Flag("category"))
	assert.True(t, p.BoolFlag("json"))
}

func TestArgParser_BooleanFlagDoesNotTakeValue(t *testing.T) {
	p := NewArgParser([]string{"--json", "5"})
	assert.True(t, p.BoolFlag("json"))
	assert.Equal(t, "5", p.Positional(0))
}

func TestArgParser_DoubleDash(t *testing.T) {
	p := NewArgParser([]string{"--", "--json", "-x"})
	assert.False(t, p.BoolFlag("json"))
	assert.Equal(t, 2, p.PositionalCount())
}

func TestArgParser_EqualsForm(t *testing.T) {
	p := NewArgParser([]string{"--config=/tmp/c.toml", "--json=false"})
	assert.Equal(t, "/tmp/c.toml", p.Flag("config"))
	assert.False(t, p.BoolFlag("json"))
}

func TestParseIntWithValidation(t *testing.T) {
	n, err := ParseIntWithValidation("3", "n")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, in := range []string{"", "x", "0", "-2"} {
		_, err := ParseIntWithValidation(in, "n")
		assert.Error(t, err, in)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		argv       []string
		cmd        Command
		positional []string
	}{
		{nil, CmdTUI, nil},
		{[]string{"tui"}, CmdTUI, nil},
		{[]string{"repl"}, CmdREPL, nil},
		{[]string{"eval", "2+3"}, CmdEval, []string{"2+3"}},
		{[]string{"2", "+", "3"}, CmdEval, []string{"2", "+", "3"}},
		{[]string{"--", "-2^2"}, CmdEval, []string{"-2^2"}},
		{[]string{"c", "1", "m", "km"}, CmdConvert, []string{"1", "m", "km"}},
		{[]string{"units", "data"}, CmdUnits, []string{"data"}},
		{[]string{"config", "get", "ui.theme"}, CmdConfig, []string{"get", "ui.theme"}},
		{[]string{"version"}, CmdVersion, nil},
		{[]string{"--version"}, CmdVersion, nil},
		{[]string{"-h"}, CmdHelp, nil},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, " "), func(t *testing.T) {
			cmd, args := Parse(tt.argv)
			assert.Equal(t, tt.cmd, cmd)
			if tt.positional != nil {
				assert.Equal(t, tt.positional, args.Positional)
			}
		})
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"eval", "1+1", "--json", "--no-color", "--config", "/tmp/x.toml"})
	assert.Equal(t, CmdEval, cmd)
	assert.True(t, args.JSON)
	assert.True(t, args.NoColor)
	assert.Equal(t, "/tmp/x.toml", args.ConfigPath)
	assert.Equal(t, []string{"1+1"}, args.Positional)

	_, args = Parse([]string{"config", "set", "ui.theme", "dark"})
	assert.Equal(t, "set", args.Subcommand)
}

// =============================================================================
// EVAL AND CONVERT
// =============================================================================

func TestHandleEval(t *testing.T) {
	env, stdout, _ := testEnv("")
	require.NoError(t, HandleEval(env, Args{Positional: []string{"2", "+", "3", "*", "4"}}))
	assert.Equal(t, "14\n", stdout.String())
}

func TestHandleEval_Error(t *testing.T) {
	env, _, _ := testEnv("")
	err := HandleEval(env, Args{Positional: []string{"1/0"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calc.ErrDivisionByZero))
	assert.Equal(t, ExitEvaluationError, GetExitCode(err))
	assert.Equal(t, "evaluation_error:division_by_zero", ErrorType(err))
}

func TestHandleEval_Missing(t *testing.T) {
	env, _, _ := testEnv("")
	err := HandleEval(env, Args{})
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleEval_JSON(t *testing.T) {
	env, stdout, _ := testEnv("")
	require.NoError(t, HandleEval(env, Args{JSON: true, Positional: []string{"√(16)"}}))

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "eval", resp.Command)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "4", data["result"])
}

func TestHandleConvert(t *testing.T) {
	tests := []struct {
		args []string
		swap bool
		want string
	}{
		{[]string{"1000", "m", "km"}, false, "1000.0 meter = 1 kilometer\n"},
		{[]string{"32", "F", "C"}, false, "32.0 Fahrenheit = 0 Celsius\n"},
		{[]string{"1", "kB", "B"}, false, "1.0 kilobyte = 1024 byte\n"},
		{[]string{"1", "km", "m"}, true, "1.0 meter = 0.001 kilometer\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			env, stdout, _ := testEnv("")
			require.NoError(t, HandleConvert(env, Args{Positional: tt.args, Swap: tt.swap}))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestHandleConvert_Errors(t *testing.T) {
	env, _, _ := testEnv("")

	err := HandleConvert(env, Args{Positional: []string{"abc", "m", "km"}})
	assert.True(t, errors.Is(err, units.ErrInvalidNumber))
	assert.Equal(t, ExitConversionError, GetExitCode(err))

	err = HandleConvert(env, Args{Positional: []string{"1", "m", "kg"}})
	assert.True(t, errors.Is(err, units.ErrUnknownUnit))

	err = HandleConvert(env, Args{Positional: []string{"1", "m", "km"}, Category: "weight"})
	assert.True(t, errors.Is(err, units.ErrUnknownUnit))

	err = HandleConvert(env, Args{Positional: []string{"1", "m"}})
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleConvert_JSON(t *testing.T) {
	env, stdout, _ := testEnv("")
	require.NoError(t, HandleConvert(env, Args{JSON: true, Positional: []string{"1", "hour", "min"}}))

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Time", data["category"])
	assert.Equal(t, "60", data["result"])
}

func TestHandleUnits(t *testing.T) {
	env, stdout, _ := testEnv("")
	require.NoError(t, HandleUnits(env, Args{Positional: []string{"data"}}))
	out := stdout.String()
	assert.Contains(t, out, "Data")
	assert.Contains(t, out, "kilobyte")
	assert.NotContains(t, out, "meter")

	stdout.Reset()
	require.NoError(t, HandleUnits(env, Args{}))
	for _, c := range units.Categories() {
		assert.Contains(t, stdout.String(), c.String())
	}

	err := HandleUnits(env, Args{Positional: []string{"volume"}})
	assert.Equal(t, ExitNotFoundError, GetExitCode(err))
}

// =============================================================================
// CONFIG
// =============================================================================

func TestHandleConfig_SetAndGet(t *testing.T) {
	env, stdout, _ := testEnv("")

	require.NoError(t, HandleConfig(env, Args{Subcommand: "set", Positional: []string{"set", "ui.theme", "light"}}))
	assert.Equal(t, "light", env.Config.UI.Theme)

	data, err := afero.ReadFile(env.Fs, env.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `theme = "light"`)

	stdout.Reset()
	require.NoError(t, HandleConfig(env, Args{Subcommand: "get", Positional: []string{"get", "ui.history_height"}}))
	assert.Equal(t, "8\n", stdout.String())
}

func TestHandleConfig_SetInvalid(t *testing.T) {
	env, _, _ := testEnv("")

	err := HandleConfig(env, Args{Subcommand: "set", Positional: []string{"set", "ui.theme", "neon"}})
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, GetExitCode(err))
	assert.Equal(t, "auto", env.Config.UI.Theme)

	exists, _ := afero.Exists(env.Fs, env.ConfigPath)
	assert.False(t, exists)
}

func TestHandleConfig_Other(t *testing.T) {
	env, stdout, _ := testEnv("")

	require.NoError(t, HandleConfig(env, Args{Subcommand: "path"}))
	assert.Equal(t, env.ConfigPath+"\n", stdout.String())

	stdout.Reset()
	require.NoError(t, HandleConfig(env, Args{Subcommand: "keys"}))
	assert.Contains(t, stdout.String(), "converter.default_category")

	stdout.Reset()
	require.NoError(t, HandleConfig(env, Args{}))
	assert.Contains(t, stdout.String(), "[ui]")

	err := HandleConfig(env, Args{Subcommand: "get", Positional: []string{"get", "ui.nope"}})
	assert.Equal(t, ExitNotFoundError, GetExitCode(err))

	err = HandleConfig(env, Args{Subcommand: "frob"})
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

// =============================================================================
// PIPE AND REPL
// =============================================================================

func TestRunPipe(t *testing.T) {
	env, stdout, _ := testEnv("2+3*4\n\n# comment\n1/0\nsqrt(16)\n")

	err := RunPipe(env, Args{})
	require.Error(t, err)
	assert.Equal(t, "14\nError\n4\n", stdout.String())
	assert.Equal(t, ExitEvaluationError, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 3")
}

func TestRunPipe_AllOK(t *testing.T) {
	env, stdout, _ := testEnv("1+1\n2×3\n")
	require.NoError(t, RunPipe(env, Args{}))
	assert.Equal(t, "2\n6\n", stdout.String())
}

func TestRunPipe_ErrorMarkerFromConfig(t *testing.T) {
	env, stdout, _ := testEnv("1/0\n")
	env.Config.Display.ErrorMarker = "ERR"
	require.Error(t, RunPipe(env, Args{}))
	assert.Equal(t, "ERR\n", stdout.String())
}

// scriptReader feeds fixed lines to the REPL.
type scriptReader struct {
	lines   []string
	history []string
}

func (r *scriptReader) Prompt(string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptReader) AppendHistory(item string) { r.history = append(r.history, item) }

func (r *scriptReader) Close() error { return nil }

func TestRunREPL(t *testing.T) {
	env, stdout, stderr := testEnv("")
	reader := &scriptReader{lines: []string{
		"2+3*4",
		"*2",
		"",
		":history",
		":recall 1",
		":convert 1 kB B",
		":ans",
		"1/0",
		":quit",
		"never reached",
	}}

	require.NoError(t, RunREPL(env, reader, NewSession(env)))

	out := stdout.String()
	assert.Contains(t, out, "14\n")
	assert.Contains(t, out, "28\n")
	assert.Contains(t, out, "  1  2+3*4 = 14\n")
	assert.Contains(t, out, "  2  14*2 = 28\n")
	assert.Contains(t, out, "1024 byte\n")
	assert.Contains(t, out, "Error\n")
	assert.NotContains(t, out, "never")
	assert.Contains(t, stderr.String(), "division by zero")
	assert.Equal(t, []string{"2+3*4", "*2", ":history", ":recall 1", ":convert 1 kB B", ":ans", "1/0", ":quit"}, reader.history)
}

func TestRunREPL_CommandErrors(t *testing.T) {
	env, stdout, stderr := testEnv("")
	reader := &scriptReader{lines: []string{
		":recall 9",
		":recall",
		":convert 1 m kg",
		":frob",
	}}

	require.NoError(t, RunREPL(env, reader, NewSession(env)))
	assert.Contains(t, stdout.String(), "Invalid units")
	assert.Contains(t, stderr.String(), "unknown command :frob")
	assert.Contains(t, stderr.String(), "missing entry number")
}

func TestRunREPL_UnaryCommands(t *testing.T) {
	env, stdout, _ := testEnv("")
	reader := &scriptReader{lines: []string{":sqrt 16", ":pct 50", ":sqrt"}}

	require.NoError(t, RunREPL(env, reader, NewSession(env)))
	assert.Contains(t, stdout.String(), "4\n")
	assert.Contains(t, stdout.String(), "0.5\n")
	assert.Contains(t, stdout.String(), "0.707106781187\n")
}

func TestCompleteLine(t *testing.T) {
	assert.Equal(t, []string{":recall"}, completeLine(":rec"))
	assert.Contains(t, completeLine("2*sq"), "2*sqrt")
	assert.Contains(t, completeLine("log"), "log10")
	assert.Nil(t, completeLine("2+"))
}
