// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"math"
	"strconv"
	"strings"
)

// Units returns the canonical unit names of c in menu order, or nil for an
// invalid category.
func Units(c Category) []string {
	table := tables[c]
	if len(table) == 0 {
		return nil
	}
	names := make([]string, len(table))
	for i, u := range table {
		names[i] = u.Name
	}
	return names
}

// Table returns a copy of c's unit table.
func Table(c Category) []Unit {
	return append([]Unit(nil), tables[c]...)
}

// Resolve maps a unit name or alias to its canonical name within c.
// Canonical names match case-insensitively; aliases that differ only by case
// (such as "mB" and "MB") are tried exactly first.
func Resolve(c Category, name string) (string, bool) {
	n := strings.TrimSpace(name)
	table := tables[c]
	for _, u := range table {
		if strings.EqualFold(u.Name, n) {
			return u.Name, true
		}
	}
	for _, u := range table {
		for _, a := range u.Aliases {
			if a == n {
				return u.Name, true
			}
		}
	}
	for _, u := range table {
		for _, a := range u.Aliases {
			if strings.EqualFold(a, n) {
				return u.Name, true
			}
		}
	}
	return "", false
}

// FindCategory returns the first category in which both units resolve.
func FindCategory(from, to string) (Category, bool) {
	for _, c := range Categories() {
		if _, ok := Resolve(c, from); !ok {
			continue
		}
		if _, ok := Resolve(c, to); ok {
			return c, true
		}
	}
	return 0, false
}

// Convert converts value from one unit of c to another.
func Convert(c Category, from, to string, value float64) (float64, error) {
	if !c.Valid() {
		return 0, &ConversionError{Category: c.String(), Err: ErrUnknownCategory}
	}
	fromName, ok := Resolve(c, from)
	if !ok {
		return 0, &ConversionError{Category: c.String(), Unit: from, Err: ErrUnknownUnit}
	}
	toName, ok := Resolve(c, to)
	if !ok {
		return 0, &ConversionError{Category: c.String(), Unit: to, Err: ErrUnknownUnit}
	}

	if c == Temperature {
		return convertTemperature(value, fromName, toName)
	}
	return value * scaleOf(c, fromName) / scaleOf(c, toName), nil
}

func scaleOf(c Category, name string) float64 {
	for _, u := range tables[c] {
		if u.Name == name {
			return u.Scale
		}
	}
	return math.NaN()
}

// ParseValue parses the converter's value field.
func ParseValue(text string) (float64, error) {
	txt := strings.TrimSpace(text)
	if txt == "" {
		return 0, &ConversionError{Err: ErrEmptyValue}
	}
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ConversionError{Input: txt, Err: ErrInvalidNumber}
	}
	return v, nil
}
