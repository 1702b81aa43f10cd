// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"strings"
)

// RunPipe evaluates one expression per line of env.Stdin and writes one
// result per line. Blank lines and lines starting with '#' are skipped. Each
// line is independent; failures print the error marker and evaluation
// continues with the next line.
func RunPipe(env *Env, args Args) error {
	s := NewSession(env)
	scanner := bufio.NewScanner(env.Stdin)

	var total, failed int
	var firstErr error
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++

		s.Clear()
		s.Type(line)
		expr := s.Expression()
		out := s.Evaluate()

		if out.Failed() {
			failed++
			if firstErr == nil {
				firstErr = out.Err
			}
		}

		switch {
		case args.JSON && out.Failed():
			NewJSONErrorResponse("eval", out.Err, EvalData{Expression: expr}).Print(env.Stdout)
		case args.JSON:
			NewJSONResponse("eval", EvalData{Expression: expr, Result: out.Display}).Print(env.Stdout)
		default:
			fmt.Fprintln(env.Stdout, out.Display)
		}
	}
	if err := scanner.Err(); err != nil {
		return &CommandError{Command: "eval", Action: "pipe", Reason: "could not read input", Err: err}
	}

	if failed > 0 {
		return &CommandError{
			Command: "eval",
			Action:  "pipe",
			Reason:  fmt.Sprintf("%d of %d expressions failed", failed, total),
			Err:     firstErr,
		}
	}
	return nil
}
