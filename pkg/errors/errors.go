package errors

import (
	"fmt"
)

// ParseError represents a theme decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// VariantError reports a variant rejected by strict parsing.
type VariantError struct {
	Breakpoint string
	Message    string
}

// NewVariantError constructs a VariantError for the given breakpoint entry.
func NewVariantError(breakpoint, message string) error {
	return &VariantError{Breakpoint: breakpoint, Message: message}
}

func (e *VariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Breakpoint != "" {
		return fmt.Sprintf("invalid variant [%s]: %s", e.Breakpoint, e.Message)
	}
	return fmt.Sprintf("invalid variant: %s", e.Message)
}
