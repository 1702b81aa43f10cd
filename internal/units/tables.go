// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

// Unit is one entry of a category's unit table.
type Unit struct {
	Name    string   // Canonical name shown in menus
	Scale   float64  // Base units per 1 of this unit; 0 for temperature units
	Aliases []string // Short names accepted on the command line
}

// Temperature unit names, in menu order.
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// tables holds every category's units in menu order. The first two entries
// of each table are the default from/to pair.
var tables = map[Category][]Unit{
	Length: {
		{Name: "meter", Scale: 1.0, Aliases: []string{"m", "meters", "metre"}},
		{Name: "kilometer", Scale: 1000.0, Aliases: []string{"km", "kilometers", "kilometre"}},
		{Name: "centimeter", Scale: 0.01, Aliases: []string{"cm", "centimeters"}},
		{Name: "millimeter", Scale: 0.001, Aliases: []string{"mm", "millimeters"}},
		{Name: "mile", Scale: 1609.344, Aliases: []string{"mi", "miles"}},
		{Name: "yard", Scale: 0.9144, Aliases: []string{"yd", "yards"}},
		{Name: "foot", Scale: 0.3048, Aliases: []string{"ft", "feet"}},
		{Name: "inch", Scale: 0.0254, Aliases: []string{"in", "inches"}},
	},
	Weight: {
		{Name: "kilogram", Scale: 1.0, Aliases: []string{"kg", "kilograms"}},
		{Name: "gram", Scale: 0.001, Aliases: []string{"g", "grams"}},
		{Name: "milligram", Scale: 1e-6, Aliases: []string{"mg", "milligrams"}},
		{Name: "pound", Scale: 0.45359237, Aliases: []string{"lb", "lbs", "pounds"}},
		{Name: "ounce", Scale: 0.028349523125, Aliases: []string{"oz", "ounces"}},
	},
	Temperature: {
		{Name: Celsius, Aliases: []string{"c", "°c", "degc"}},
		{Name: Fahrenheit, Aliases: []string{"f", "°f", "degf"}},
		{Name: Kelvin, Aliases: []string{"k"}},
	},
	Time: {
		{Name: "second", Scale: 1.0, Aliases: []string{"s", "sec", "seconds"}},
		{Name: "minute", Scale: 60.0, Aliases: []string{"min", "minutes"}},
		{Name: "hour", Scale: 3600.0, Aliases: []string{"h", "hr", "hours"}},
		{Name: "day", Scale: 86400.0, Aliases: []string{"d", "days"}},
	},
	Data: {
		{Name: "bit", Scale: 1 / 8.0, Aliases: []string{"bits"}},
		{Name: "byte", Scale: 1.0, Aliases: []string{"B", "bytes"}},
		{Name: "kilobyte", Scale: 1024.0, Aliases: []string{"kB", "KB", "KiB", "kilobytes"}},
		{Name: "megabyte", Scale: 1024.0 * 1024, Aliases: []string{"MB", "MiB", "megabytes"}},
		{Name: "gigabyte", Scale: 1024.0 * 1024 * 1024, Aliases: []string{"GB", "GiB", "gigabytes"}},
		{Name: "terabyte", Scale: 1024.0 * 1024 * 1024 * 1024, Aliases: []string{"TB", "TiB", "terabytes"}},
	},
}
