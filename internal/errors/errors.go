// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrIndicatorNotFound  = errors.New("indicator not found")
	ErrUnknownSlot        = errors.New("unknown condition slot")
	ErrUnknownComparator  = errors.New("unknown comparator")
	ErrUnknownMode        = errors.New("unknown mode")
	ErrLegNotFound        = errors.New("leg not found")
	ErrLastLeg            = errors.New("a strategy must retain at least one leg")
	ErrDraftLocked        = errors.New("draft is read-only while a submission is in flight")
	ErrDraftInvalid       = errors.New("draft failed validation")
	ErrCatalogUnavailable = errors.New("indicator catalog unavailable")
	ErrRecordNotFound     = errors.New("strategy record not found")
	ErrDatabaseError      = errors.New("database error")
	ErrConfigInvalid      = errors.New("invalid configuration")
)

// SchemaError represents a malformed parameter value for a slot. Schema
// errors are corrected locally by reverting to the schema default and
// never reach the assembled spec.
type SchemaError struct {
	Indicator string
	Parameter string
	Value     interface{}
	Message   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error [%s.%s] (%v): %s", e.Indicator, e.Parameter, e.Value, e.Message)
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(indicator, parameter string, value interface{}, message string) *SchemaError {
	return &SchemaError{
		Indicator: indicator,
		Parameter: parameter,
		Value:     value,
		Message:   message,
	}
}

// ValidationError represents a draft that failed validation. Failures
// holds the full ordered list of user-facing messages.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft failed validation with %d issue(s)", len(e.Failures))
}

func (e *ValidationError) Unwrap() error {
	return ErrDraftInvalid
}

// NewValidationError creates a new ValidationError.
func NewValidationError(failures []string) *ValidationError {
	return &ValidationError{Failures: failures}
}

// SubmissionError represents a rejection of an assembled spec by the
// persistence service.
type SubmissionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed [%d]: %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("submission failed [%d]: %s", e.StatusCode, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError creates a new SubmissionError.
func NewSubmissionError(statusCode int, message string, err error) *SubmissionError {
	return &SubmissionError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
