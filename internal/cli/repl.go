// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/session"
	"github.com/jeranaias/circalc/internal/units"
)

// =============================================================================
// LINE INPUT
// =============================================================================

// LineReader reads edited input lines. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// replCommands are the colon commands, for help and completion.
var replCommands = []struct {
	name, args, help string
}{
	{":convert", "<value> <from> <to>", "convert a value between units"},
	{":units", "[category]", "list units"},
	{":history", "", "show the history"},
	{":recall", "<n>", "put history entry n back on the display"},
	{":ans", "", "show the last answer"},
	{":sqrt", "[number]", "square root of the number or the last result"},
	{":pct", "[number]", "divide the number or the last result by 100"},
	{":clear", "", "clear the current expression"},
	{":help", "", "show this help"},
	{":quit", "", "leave the REPL"},
}

// newLinerReader returns a liner-backed reader. History is kept in memory
// only and is gone when the REPL exits.
func newLinerReader() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completeLine)
	return line
}

// completeLine completes colon commands at the start of the line and
// function or constant names after it.
func completeLine(line string) []string {
	if strings.HasPrefix(line, ":") && !strings.Contains(line, " ") {
		var out []string
		for _, c := range replCommands {
			if strings.HasPrefix(c.name, line) {
				out = append(out, c.name)
			}
		}
		return out
	}

	start := len(line)
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	word := line[start:]
	if word == "" {
		return nil
	}

	var out []string
	for _, name := range append(calc.Functions(), calc.Constants()...) {
		if strings.HasPrefix(name, word) {
			out = append(out, line[:start]+name)
		}
	}
	sort.Strings(out)
	return out
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// =============================================================================
// REPL
// =============================================================================

// NewSession builds a calculator session from env's config.
func NewSession(env *Env) *session.Session {
	opts := []session.Option{
		session.WithLogger(env.Logger),
		session.WithErrorMarker(env.Config.Display.ErrorMarker),
	}
	if cat, err := units.ParseCategory(env.Config.Converter.DefaultCategory); err == nil {
		opts = append(opts, session.WithCategory(cat))
	}
	return session.New(opts...)
}

// HandleREPL handles the "repl" command.
func HandleREPL(env *Env, args Args) error {
	reader := newLinerReader()
	defer reader.Close()

	fmt.Fprintln(env.Stdout, RenderConditional(TitleStyle, "circalc "+Version)+
		RenderConditional(DimStyle, "  type an expression, :help for commands"))
	return RunREPL(env, reader, NewSession(env))
}

// RunREPL reads lines from r until EOF, Ctrl+C or :quit. Each line is a new
// expression; a line that starts with an operator continues from the last
// answer.
func RunREPL(env *Env, r LineReader, s *session.Session) error {
	repl := &replState{env: env, s: s}
	for {
		line, err := r.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(env.Stdout)
				return nil
			}
			return &CommandError{Command: "repl", Action: "read", Reason: "input failed", Err: err}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if quit := repl.command(line); quit {
				return nil
			}
			continue
		}
		repl.evaluate(line)
	}
}

type replState struct {
	env *Env
	s   *session.Session
}

func (r *replState) evaluate(line string) {
	r.s.Clear()
	if continuesAnswer(line) && r.s.LastAnswer() != "" {
		r.s.Press(session.KeyAnswer)
	}
	r.s.Type(line)
	r.show(r.s.Evaluate())
}

// continuesAnswer reports whether line starts with a binary operator. "-" is
// excluded since "-3" is a number.
func continuesAnswer(line string) bool {
	for _, op := range []string{"+", "*", "/", "^", "×", "÷"} {
		if strings.HasPrefix(line, op) {
			return true
		}
	}
	return false
}

func (r *replState) show(out session.Outcome) {
	if out.Failed() {
		fmt.Fprintln(r.env.Stdout, RenderConditional(ErrorStyle, out.Display))
		fmt.Fprintln(r.env.Stderr, RenderConditional(DimStyle, "  "+out.Err.Error()))
		return
	}
	fmt.Fprintln(r.env.Stdout, RenderConditional(ResultStyle, out.Display))
}

func (r *replState) printErr(err error) {
	fmt.Fprintln(r.env.Stderr, RenderConditional(ErrorStyle, err.Error()))
}

// command runs a colon command and reports whether the REPL should exit.
func (r *replState) command(line string) bool {
	fields := strings.Fields(line)
	name, rest := fields[0], fields[1:]

	switch name {
	case ":quit", ":q", ":exit":
		return true

	case ":help", ":h":
		for _, c := range replCommands {
			fmt.Fprintf(r.env.Stdout, "  %-9s %-20s %s\n", c.name, c.args, RenderConditional(DimStyle, c.help))
		}

	case ":ans":
		if r.s.LastAnswer() == "" {
			fmt.Fprintln(r.env.Stdout, RenderConditional(DimStyle, "(no answer yet)"))
		} else {
			fmt.Fprintln(r.env.Stdout, r.s.LastAnswer())
		}

	case ":history":
		entries := r.s.History().Entries()
		if len(entries) == 0 {
			fmt.Fprintln(r.env.Stdout, RenderConditional(DimStyle, "(empty)"))
		}
		for i, e := range entries {
			fmt.Fprintf(r.env.Stdout, "%3d  %s\n", i+1, e)
		}

	case ":recall":
		if len(rest) != 1 {
			r.printErr(ErrMissingArgument(":recall", "entry number", ":recall <n>"))
			break
		}
		n, err := ParseIntWithValidation(rest[0], "entry number")
		if err != nil {
			r.printErr(err)
			break
		}
		out, err := r.s.Recall(n - 1)
		if err != nil {
			r.printErr(err)
			break
		}
		r.show(out)

	case ":units":
		if err := HandleUnits(r.env, Args{Positional: rest}); err != nil {
			r.printErr(err)
		}

	case ":convert":
		r.convert(rest)

	case ":sqrt":
		r.unary(rest, r.s.SquareRoot)

	case ":pct":
		r.unary(rest, r.s.Percent)

	case ":clear":
		r.s.Clear()

	default:
		r.printErr(fmt.Errorf("unknown command %s (try :help)", name))
	}
	return false
}

// unary applies a display operation to the given number, or to the current
// expression (the last result) when no number is given.
func (r *replState) unary(rest []string, op func() session.Outcome) {
	if len(rest) > 0 {
		r.s.Clear()
		r.s.Type(strings.Join(rest, " "))
	}
	r.show(op())
}

func (r *replState) convert(rest []string) {
	if len(rest) != 3 {
		r.printErr(ErrMissingArgument(":convert", "value and two units", ":convert <value> <from> <to>"))
		return
	}

	c, err := resolveConversion(rest[0], rest[1], rest[2], "")
	if err == nil {
		sel := r.s.Converter()
		if err = sel.SetCategory(c.category); err == nil {
			if err = sel.SetFrom(c.from); err == nil {
				err = sel.SetTo(c.to)
			}
		}
	}
	if err != nil {
		logConvertFailure(r.env, strings.Join(rest, " "), err)
		fmt.Fprintln(r.env.Stdout, RenderConditional(ErrorStyle, units.UserMessage(err)))
		return
	}

	text, err := r.s.Convert(rest[0])
	if err != nil {
		fmt.Fprintln(r.env.Stdout, RenderConditional(ErrorStyle, text))
		return
	}
	fmt.Fprintln(r.env.Stdout, RenderConditional(ResultStyle, text))
}
