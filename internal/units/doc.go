// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package units converts numeric values between units of one measurement
// category.
//
// Length, Weight, Time and Data are linear: every unit has a scale factor
// expressing how many base units (meter, kilogram, second, byte) one of it
// holds, and a value is converted through the base. Data uses binary
// multiples throughout (1 kilobyte = 1024 bytes).
//
// Temperature has no shared multiplicative base and is converted through
// Celsius with affine formulas.
//
// # Usage
//
//	km, err := units.Convert(units.Length, "meter", "kilometer", 1000) // 1
//
//	sel := units.NewSelection(units.Length)
//	sel.SetCategory(units.Temperature) // From() == "Celsius", To() == "Fahrenheit"
package units
