// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/history"
	"github.com/jeranaias/circalc/internal/units"
)

const convertUsage = "circalc convert <value> <from> <to> [--category NAME] [--swap]"

// conversion is a resolved convert request.
type conversion struct {
	category units.Category
	from, to string
	input    string
	value    float64
}

// resolveConversion parses the value and resolves both units. With an
// explicit category the units must belong to it; otherwise the category is
// found from the unit names.
func resolveConversion(valueText, from, to, categoryName string) (conversion, error) {
	value, err := units.ParseValue(valueText)
	if err != nil {
		return conversion{input: valueText}, err
	}

	var cat units.Category
	if categoryName != "" {
		cat, err = units.ParseCategory(categoryName)
		if err != nil {
			return conversion{input: valueText}, err
		}
	} else {
		var ok bool
		cat, ok = units.FindCategory(from, to)
		if !ok {
			return conversion{input: valueText}, &units.ConversionError{Unit: from + "/" + to, Err: units.ErrUnknownUnit}
		}
	}

	fromName, ok := units.Resolve(cat, from)
	if !ok {
		return conversion{input: valueText}, &units.ConversionError{Category: cat.String(), Unit: from, Err: units.ErrUnknownUnit}
	}
	toName, ok := units.Resolve(cat, to)
	if !ok {
		return conversion{input: valueText}, &units.ConversionError{Category: cat.String(), Unit: to, Err: units.ErrUnknownUnit}
	}
	return conversion{category: cat, from: fromName, to: toName, input: valueText, value: value}, nil
}

// HandleConvert handles the "convert" command.
func HandleConvert(env *Env, args Args) error {
	if len(args.Positional) != 3 {
		err := &UsageError{Command: "convert", Reason: "expected a value and two units", Usage: convertUsage}
		if args.JSON {
			NewJSONErrorResponse("convert", err, nil).Print(env.Stdout)
		}
		return err
	}

	from, to := args.Positional[1], args.Positional[2]
	if args.Swap {
		from, to = to, from
	}
	c, err := resolveConversion(args.Positional[0], from, to, args.Category)
	var r float64
	if err == nil {
		r, err = units.Convert(c.category, c.from, c.to, c.value)
	}
	if err != nil {
		logConvertFailure(env, strings.Join(args.Positional, " "), err)
		if args.JSON {
			NewJSONErrorResponse("convert", err, ConvertData{Input: args.Positional[0]}).Print(env.Stdout)
		}
		return err
	}

	result := calc.Format(r)
	entry := history.FormatConversion(c.value, c.from, result, c.to)
	if args.JSON {
		return NewJSONResponse("convert", ConvertData{
			Category: c.category.String(),
			From:     c.from,
			To:       c.to,
			Input:    c.input,
			Value:    r,
			Result:   result,
			Entry:    entry,
		}).Print(env.Stdout)
	}

	fmt.Fprintln(env.Stdout, entry)
	return nil
}

func logConvertFailure(env *Env, input string, err error) {
	kind := "unknown"
	var convErr *units.ConversionError
	if errors.As(err, &convErr) {
		kind = convErr.Kind()
	}
	env.Logger.Debug("conversion failed", "input", input, "kind", kind, "error", err)
}

// HandleUnits handles the "units" command: list every category, or one.
func HandleUnits(env *Env, args Args) error {
	name := args.Category
	if name == "" && len(args.Positional) > 0 {
		name = args.Positional[0]
	}

	cats := units.Categories()
	if name != "" {
		cat, err := units.ParseCategory(name)
		if err != nil {
			return &NotFoundError{Resource: "category", ID: name}
		}
		cats = []units.Category{cat}
	}

	for i, cat := range cats {
		if i > 0 {
			fmt.Fprintln(env.Stdout)
		}
		writeUnitTable(env, cat)
	}
	return nil
}

func writeUnitTable(env *Env, cat units.Category) {
	fmt.Fprintln(env.Stdout, RenderConditional(TitleStyle, cat.String()))
	fmt.Fprintln(env.Stdout, RenderSeparator(len(cat.String())))
	for _, u := range units.Table(cat) {
		line := RenderLabel(u.Name)
		if cat.Linear() {
			line += RenderConditional(ValueStyle, calc.Format(u.Scale))
		}
		if len(u.Aliases) > 0 {
			line += "  " + RenderConditional(DimStyle, strings.Join(u.Aliases, ", "))
		}
		fmt.Fprintln(env.Stdout, strings.TrimRight(line, " "))
	}
}
