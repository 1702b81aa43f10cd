// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"errors"
	"fmt"
)

// Error kinds. A *ConversionError always wraps exactly one of these.
var (
	ErrEmptyValue      = errors.New("empty value")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnknownCategory = errors.New("unknown category")
)

// ConversionError reports why a conversion could not be performed.
type ConversionError struct {
	Category string // Category name as given
	Unit     string // Offending unit, if any
	Input    string // Offending value text, if any
	Err      error  // One of the Err* kinds above
}

func (e *ConversionError) Error() string {
	switch e.Err {
	case ErrEmptyValue:
		return "empty value"
	case ErrInvalidNumber:
		return fmt.Sprintf("invalid number %q", e.Input)
	case ErrUnknownUnit:
		return fmt.Sprintf("unknown %s unit %q", e.Category, e.Unit)
	case ErrUnknownCategory:
		return fmt.Sprintf("unknown category %q", e.Category)
	}
	return "conversion failed"
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Message is the short text shown in the converter's result area.
func (e *ConversionError) Message() string {
	switch e.Err {
	case ErrEmptyValue:
		return "Enter value"
	case ErrInvalidNumber:
		return "Invalid number"
	default:
		return "Invalid units"
	}
}

// Kind returns a stable short name for the wrapped error kind.
func (e *ConversionError) Kind() string {
	switch e.Err {
	case ErrEmptyValue:
		return "empty_value"
	case ErrInvalidNumber:
		return "invalid_number"
	case ErrUnknownUnit:
		return "unknown_unit"
	case ErrUnknownCategory:
		return "unknown_category"
	}
	return "unknown"
}

// UserMessage returns the result-area text for any error, falling back to the
// error string for errors that did not come from this package.
func UserMessage(err error) string {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Message()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
