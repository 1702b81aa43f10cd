// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/jeranaias/circalc/internal/calc"
	"github.com/jeranaias/circalc/internal/history"
	"github.com/jeranaias/circalc/internal/units"
	"github.com/jeranaias/circalc/internal/util"
)

// DefaultErrorMarker is shown on the display after a failed operation.
const DefaultErrorMarker = "Error"

// =============================================================================
// SESSION
// =============================================================================

// Session is the calculator state driven by one event loop.
type Session struct {
	expr       string
	errored    bool
	lastAnswer string

	history   *history.Log
	converter *units.Selection

	errorMarker string
	logger      *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for failed operations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorMarker sets the text shown on the display after a failure.
func WithErrorMarker(marker string) Option {
	return func(s *Session) {
		if marker != "" {
			s.errorMarker = marker
		}
	}
}

// WithCategory sets the converter's starting category.
func WithCategory(c units.Category) Option {
	return func(s *Session) {
		s.converter = units.NewSelection(c)
	}
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		history:     history.New(),
		converter:   units.NewSelection(units.Length),
		errorMarker: DefaultErrorMarker,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// STATE ACCESS
// =============================================================================

// Display returns the text for the calculator display.
func (s *Session) Display() string {
	if s.errored {
		return s.errorMarker
	}
	return s.expr
}

// Expression returns the expression being built (empty after a failure).
func (s *Session) Expression() string { return s.expr }

// Errored reports whether the display shows the error marker.
func (s *Session) Errored() bool { return s.errored }

// LastAnswer returns the most recent result, or "" before any.
func (s *Session) LastAnswer() string { return s.lastAnswer }

// History returns the session's history log.
func (s *Session) History() *history.Log { return s.history }

// Converter returns the converter selection.
func (s *Session) Converter() *units.Selection { return s.converter }

// SetErrorMarker changes the failure marker, e.g. after a config reload.
func (s *Session) SetErrorMarker(marker string) {
	if marker != "" {
		s.errorMarker = marker
	}
}

// =============================================================================
// KEYPAD OPERATIONS
// =============================================================================

// Press applies the keypad button with the given label.
func (s *Session) Press(label string) Outcome {
	switch label {
	case KeyClear:
		return s.Clear()
	case KeyEquals:
		return s.Evaluate()
	case KeySqrt:
		return s.SquareRoot()
	case KeyPercent:
		return s.Percent()
	case KeyBackspace:
		return s.Backspace()
	case KeyAnswer:
		return s.appendText(s.lastAnswer)
	}
	return s.appendText(insertText(label))
}

// Type appends typed or pasted text after folding it to evaluator input.
func (s *Session) Type(text string) Outcome {
	return s.appendText(util.NormalizeInput(text))
}

func (s *Session) appendText(text string) Outcome {
	// The first input after a failure starts a fresh expression.
	if s.errored {
		s.errored = false
		s.expr = ""
	}
	s.expr += text
	return s.outcome(ActionAppend)
}

// Clear empties the expression.
func (s *Session) Clear() Outcome {
	s.expr = ""
	s.errored = false
	return s.outcome(ActionClear)
}

// Backspace removes the last character. On the error marker it clears.
func (s *Session) Backspace() Outcome {
	if s.errored {
		return s.Clear()
	}
	s.expr = util.DropLastRune(s.expr)
	return s.outcome(ActionBackspace)
}

// Evaluate evaluates the expression and replaces it with the result.
func (s *Session) Evaluate() Outcome {
	src := s.expr
	v, err := calc.Evaluate(src)
	if err != nil {
		return s.failCalc(ActionEvaluate, src, err)
	}

	result := calc.Format(v)
	entry := history.FormatEvaluation(src, result)
	s.history.Append(entry)
	s.expr = result
	s.lastAnswer = result
	return Outcome{Action: ActionEvaluate, Display: result, Entry: entry}
}

// SquareRoot replaces the display number with its square root. The display
// must hold a single number; expressions are not evaluated first.
func (s *Session) SquareRoot() Outcome {
	src := s.expr
	value, root, err := calc.SquareRoot(src)
	if err != nil {
		return s.failCalc(ActionSquareRoot, src, err)
	}

	result := calc.Format(root)
	entry := history.FormatSquareRoot(value, result)
	s.history.Append(entry)
	s.expr = result
	s.lastAnswer = result
	return Outcome{Action: ActionSquareRoot, Display: result, Entry: entry}
}

// Percent divides the display number by 100. An empty display is left alone.
func (s *Session) Percent() Outcome {
	src := s.expr
	if strings.TrimSpace(src) == "" {
		return s.outcome(ActionNone)
	}
	v, err := calc.Percent(src)
	if err != nil {
		return s.failCalc(ActionPercent, src, err)
	}

	s.expr = calc.Repr(v)
	s.lastAnswer = s.expr
	return s.outcome(ActionPercent)
}

func (s *Session) failCalc(action Action, src string, err error) Outcome {
	kind := "unknown"
	var evalErr *calc.EvaluationError
	if errors.As(err, &evalErr) {
		kind = evalErr.Kind()
	}
	s.logger.Debug("calculation failed",
		"action", action.String(),
		"input", src,
		"kind", kind,
		"error", err,
	)

	s.expr = ""
	s.errored = true
	return Outcome{Action: action, Display: s.errorMarker, Err: err}
}

func (s *Session) outcome(action Action) Outcome {
	return Outcome{Action: action, Display: s.Display()}
}

// =============================================================================
// CONVERTER AND HISTORY
// =============================================================================

// Convert parses valueText and converts it with the current selection. On
// success it records a history entry, sets the last answer and returns
// "<result> <unit>". On failure the returned text is the short user-facing
// message ("Enter value", "Invalid number" or "Invalid units").
func (s *Session) Convert(valueText string) (string, error) {
	value, err := units.ParseValue(valueText)
	if err != nil {
		return s.failConvert(valueText, err)
	}
	r, err := s.converter.Convert(value)
	if err != nil {
		return s.failConvert(valueText, err)
	}

	result := calc.Format(r)
	to := s.converter.To()
	s.history.Append(history.FormatConversion(value, s.converter.From(), result, to))
	s.lastAnswer = result
	return result + " " + to, nil
}

func (s *Session) failConvert(input string, err error) (string, error) {
	kind := "unknown"
	var convErr *units.ConversionError
	if errors.As(err, &convErr) {
		kind = convErr.Kind()
	}
	s.logger.Debug("conversion failed",
		"category", s.converter.Category().String(),
		"from", s.converter.From(),
		"to", s.converter.To(),
		"input", input,
		"kind", kind,
		"error", err,
	)
	return units.UserMessage(err), err
}

// Recall puts history entry i back on the display. A numeric result also
// becomes the last answer.
func (s *Session) Recall(i int) (Outcome, error) {
	r, err := s.history.RecallAt(i)
	if err != nil {
		return s.outcome(ActionNone), err
	}
	s.expr = r.Text
	s.errored = false
	if r.Numeric {
		s.lastAnswer = r.Text
	}
	return s.outcome(ActionRecall), nil
}
