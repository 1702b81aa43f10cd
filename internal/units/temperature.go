// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

// ToCelsius converts v in unit to degrees Celsius.
func ToCelsius(v float64, unit string) (float64, error) {
	switch unit {
	case Celsius:
		return v, nil
	case Fahrenheit:
		return (v - 32.0) * 5.0 / 9.0, nil
	case Kelvin:
		return v - 273.15, nil
	}
	return 0, &ConversionError{Category: Temperature.String(), Unit: unit, Err: ErrUnknownUnit}
}

// FromCelsius converts c degrees Celsius to unit.
func FromCelsius(c float64, unit string) (float64, error) {
	switch unit {
	case Celsius:
		return c, nil
	case Fahrenheit:
		return c*9.0/5.0 + 32.0, nil
	case Kelvin:
		return c + 273.15, nil
	}
	return 0, &ConversionError{Category: Temperature.String(), Unit: unit, Err: ErrUnknownUnit}
}

func convertTemperature(v float64, from, to string) (float64, error) {
	c, err := ToCelsius(v, from)
	if err != nil {
		return 0, err
	}
	return FromCelsius(c, to)
}
