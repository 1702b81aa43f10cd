// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import "strings"

// Category is a measurement category.
type Category int

const (
	Length Category = iota
	Weight
	Temperature
	Time
	Data
)

var categoryNames = [...]string{
	Length:      "Length",
	Weight:      "Weight",
	Temperature: "Temperature",
	Time:        "Time",
	Data:        "Data",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// Linear reports whether c converts through a scale-factor table.
func (c Category) Linear() bool {
	return c.Valid() && c != Temperature
}

// Categories returns every category in menu order.
func Categories() []Category {
	return []Category{Length, Weight, Temperature, Time, Data}
}

// ParseCategory resolves a category name, ignoring case.
func ParseCategory(name string) (Category, error) {
	n := strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(c.String(), n) {
			return c, nil
		}
	}
	return 0, &ConversionError{Category: name, Err: ErrUnknownCategory}
}
