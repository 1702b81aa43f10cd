// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands.
//
// Commands always return errors and let the caller decide how to display
// them; main maps them to exit codes with GetExitCode.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/config"
	"github.com/jeranaias/circalc/internal/history"
	"github.com/jeranaias/circalc/internal/units"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitEvaluationError indicates an expression could not be evaluated
	ExitEvaluationError = 4
	// ExitConversionError indicates a conversion could not be performed
	ExitConversionError = 5
	// ExitNotFoundError indicates a resource was not found
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "config", "eval")
	Action  string // Action being performed (e.g., "set", "pipe")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid command usage.
type UsageError struct {
	Command string // Command being used
	Reason  string // What was wrong
	Usage   string // Correct usage line
}

func (e *UsageError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Command, e.Reason)
	if e.Usage != "" {
		msg += fmt.Sprintf("\nUsage: %s", e.Usage)
	}
	return msg
}

// NotFoundError represents a resource not found error.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "category", "history entry")
	ID       string // Identifier that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrMissingArgument creates a usage error for a missing argument.
func ErrMissingArgument(command, argName, usage string) error {
	return &UsageError{Command: command, Reason: "missing " + argName, Usage: usage}
}

// =============================================================================
// ERROR DISPLAY HELPERS
// =============================================================================

// DisplayError writes err to w in a consistent format. In JSON mode the
// error is encoded as a JSON object with its kind.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		DisplayErrorJSON(w, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", RenderConditional(ErrorStyle, "[ERROR]"), err.Error())
}

// DisplayErrorJSON outputs an error as JSON.
func DisplayErrorJSON(w io.Writer, err error) {
	output := map[string]interface{}{
		"error":      err.Error(),
		"error_type": ErrorType(err),
		"success":    false,
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(output)
}

// ErrorType returns a stable short name for err, used in JSON output.
func ErrorType(err error) string {
	var evalErr *calc.EvaluationError
	var convErr *units.ConversionError
	var verrs config.ValidateErrors
	var usageErr *UsageError
	var notFound *NotFoundError

	switch {
	case errors.As(err, &evalErr):
		return "evaluation_error:" + evalErr.Kind()
	case errors.As(err, &convErr):
		return "conversion_error:" + convErr.Kind()
	case errors.As(err, &verrs):
		return "config_error"
	case errors.As(err, &usageErr):
		return "usage_error"
	case errors.As(err, &notFound), errors.Is(err, history.ErrIndexOutOfRange):
		return "not_found_error"
	}
	return "generic_error"
}

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var evalErr *calc.EvaluationError
	var convErr *units.ConversionError
	var verrs config.ValidateErrors
	var usageErr *UsageError
	var notFound *NotFoundError

	switch {
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &evalErr):
		return ExitEvaluationError
	case errors.As(err, &convErr):
		return ExitConversionError
	case errors.As(err, &verrs):
		return ExitConfigError
	case errors.As(err, &notFound):
		return ExitNotFoundError
	}
	return ExitGeneralError
}
