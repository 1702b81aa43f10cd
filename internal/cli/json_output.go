// json_output.go - JSON output support for scripting.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// ErrorType classifies the error (see ErrorType)
	ErrorType string `json:"error_type,omitempty"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response. data may carry the
// input that failed.
func NewJSONErrorResponse(command string, err error, data interface{}) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      data,
		Error:     &errStr,
		ErrorType: ErrorType(err),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print writes the JSON response to w.
func (r *JSONResponse) Print(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// =============================================================================
// RESPONSE DATA TYPES
// =============================================================================

// VersionData is the data payload of "version --json".
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// EvalData is the data payload of "eval --json".
type EvalData struct {
	Expression string  `json:"expression"`
	Result     string  `json:"result,omitempty"`
	Value      float64 `json:"value"`
	Tree       string  `json:"tree,omitempty"`
}

// ConvertData is the data payload of "convert --json".
type ConvertData struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Input    string  `json:"input"`
	Value    float64 `json:"value"`
	Result   string  `json:"result,omitempty"`
	Entry    string  `json:"entry,omitempty"`
}
