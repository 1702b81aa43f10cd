// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/util"
)

const evalUsage = "circalc eval <expression>"

// HandleEval handles the "eval" command: evaluate one expression given as
// the remaining arguments.
func HandleEval(env *Env, args Args) error {
	src := util.NormalizeInput(strings.Join(args.Positional, " "))
	if strings.TrimSpace(src) == "" {
		err := ErrMissingArgument("eval", "expression", evalUsage)
		if args.JSON {
			NewJSONErrorResponse("eval", err, nil).Print(env.Stdout)
		}
		return err
	}

	expr, err := calc.Compile(src)
	var v float64
	if err == nil {
		v, err = expr.Eval()
	}
	if err != nil {
		logEvalFailure(env, src, err)
		if args.JSON {
			NewJSONErrorResponse("eval", err, EvalData{Expression: src}).Print(env.Stdout)
		}
		return err
	}

	result := calc.Format(v)
	if args.JSON {
		return NewJSONResponse("eval", EvalData{
			Expression: src,
			Result:     result,
			Value:      v,
			Tree:       expr.String(),
		}).Print(env.Stdout)
	}

	fmt.Fprintln(env.Stdout, RenderConditional(ResultStyle, result))
	return nil
}

func logEvalFailure(env *Env, src string, err error) {
	kind := "unknown"
	var evalErr *calc.EvaluationError
	if errors.As(err, &evalErr) {
		kind = evalErr.Kind()
	}
	env.Logger.Debug("calculation failed", "input", src, "kind", kind, "error", err)
}
