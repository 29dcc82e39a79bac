// Package diagnostics carries fatal and collected error reporting for every
// phase of the front end, following the funxy front end's DiagnosticError
// shape but re-homed to this front end's four phases.
package diagnostics

import (
	"fmt"

	"github.com/siliconvibe/hdlfx/internal/source"
)

// Phase names which stage of the front end raised a diagnostic.
type Phase string

const (
	PhaseLexical    Phase = "lexical"
	PhaseSyntactic  Phase = "syntactic"
	PhaseResolution Phase = "resolution"
	PhaseSemantic   Phase = "semantic"
)

// ErrorCode identifies a diagnostic's template, independent of wording.
type ErrorCode string

const (
	// Lexical
	ErrUnterminatedBlockComment ErrorCode = "L001"
	ErrIllegalCharacter         ErrorCode = "L002"
	ErrNumberMissingDigits      ErrorCode = "L003"
	ErrDigitTooLarge            ErrorCode = "L004"
	ErrLeadingZero              ErrorCode = "L005"
	ErrWildcardInDecimal        ErrorCode = "L006"

	// Syntactic
	ErrExpectedToken  ErrorCode = "S001"
	ErrExtraTokens    ErrorCode = "S002"
	ErrPatternNotExpr ErrorCode = "S003"
	ErrExprNotType    ErrorCode = "S004"
	ErrTypeNotExpr    ErrorCode = "S005"
	ErrInternal       ErrorCode = "S999"

	// Resolution
	ErrNameRedefined ErrorCode = "R001"
	ErrNameNotFound  ErrorCode = "R002"
	ErrNameNotAScope ErrorCode = "R003"
	ErrNotAType      ErrorCode = "R004"

	// Semantic (shallow)
	ErrBitWidthOutOfRange      ErrorCode = "M001"
	ErrZeroWidthBitVector      ErrorCode = "M002"
	ErrTemplateParamNotInteger ErrorCode = "M003"
)

var errorTemplates = map[ErrorCode]string{
	ErrUnterminatedBlockComment: "block comment is missing closing */",
	ErrIllegalCharacter:         "illegal character: %q",
	ErrNumberMissingDigits:      "number is missing digits after base indicator",
	ErrDigitTooLarge:            "digit too big for number",
	ErrLeadingZero:              "number must not have leading zeros (for octal, use '0o377')",
	ErrWildcardInDecimal:        "wildcard is not legal in decimal integer",

	ErrExpectedToken:  "expected %s, got %q",
	ErrExtraTokens:    "extra tokens before end of file",
	ErrPatternNotExpr: "integer pattern with wildcards is not legal where an expression is required",
	ErrExprNotType:    "expression used where a type was expected",
	ErrTypeNotExpr:    "type used where an expression was expected",
	ErrInternal:       "%s",

	ErrNameRedefined: "%q is redefined in this scope",
	ErrNameNotFound:  "%q was not found",
	ErrNameNotAScope: "%q is not a scope",
	ErrNotAType:      "%q does not name a type",

	ErrBitWidthOutOfRange:      "bit width %d is out of range",
	ErrZeroWidthBitVector:      "bit-vector type cannot have zero width",
	ErrTemplateParamNotInteger: "template value parameter must have an integer type",
}

// Error is the concrete diagnostic value threaded through the front end.
// It implements error so it composes with ordinary Go error handling.
type Error struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	At    source.LocationRange
	Hint  string
}

func (e *Error) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	loc := "<unknown>"
	if e.At.Src != nil {
		loc = e.At.String()
	}
	result := fmt.Sprintf("%s: %s: %s", loc, e.Phase, message)
	if e.Hint != "" {
		result += "\n  hint: " + e.Hint
	}
	return result
}

// New builds an Error at the given phase/location.
func New(phase Phase, code ErrorCode, at source.LocationRange, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, At: at, Args: args}
}

// WithHint returns a copy of e carrying the given hint.
func (e *Error) WithHint(hint string) *Error {
	c := *e
	c.Hint = hint
	return &c
}

// Sink receives diagnostics as the front end discovers them. Report returns
// an error to abort parsing immediately, or nil to continue.
type Sink interface {
	Report(err *Error) error
}

// ShortCircuitSink is the default Sink: the first reported diagnostic is
// returned immediately, matching "one error per invocation" (spec §7).
type ShortCircuitSink struct{}

func (ShortCircuitSink) Report(err *Error) error { return err }

// CollectingSink accumulates every diagnostic reported to it instead of
// aborting, for tooling callers that want a full pass's worth of errors.
type CollectingSink struct {
	Errors []*Error
}

func (s *CollectingSink) Report(err *Error) error {
	s.Errors = append(s.Errors, err)
	return nil
}
