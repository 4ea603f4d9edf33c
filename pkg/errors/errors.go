// Package errors provides custom error types for the crosswalk system.
// These errors enable programmatic error checking with errors.Is and
// carry enough structure for callers to report schema and field-tag
// conditions precisely.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the crosswalk system
var (
	// ErrInvalidSchema indicates the input table has no usable columns
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrEmptyInput indicates the input table has zero rows
	ErrEmptyInput = errors.New("empty input")

	// ErrAmbiguousFieldTag indicates the same literal value was observed
	// under two distinct field names across different rows
	ErrAmbiguousFieldTag = errors.New("ambiguous field tag")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// SchemaError represents a schema validation failure. Schema errors abort
// the pipeline before any record is processed.
type SchemaError struct {
	Reason string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid schema: %s", e.Reason)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(reason string) *SchemaError {
	return &SchemaError{Reason: reason}
}

// FieldTagError records a value observed under two distinct field names.
// It is surfaced as a warning, never as a fatal pipeline error: the
// first-seen field tag is retained and processing continues.
type FieldTagError struct {
	Value      string // the literal value
	FirstField string // field the value was first observed under (retained)
	OtherField string // conflicting field observed later
	Row        int    // zero-based input row index of the conflicting observation
}

// Error implements the error interface
func (e *FieldTagError) Error() string {
	return fmt.Sprintf("value %q tagged %q at row %d but first seen under %q",
		e.Value, e.OtherField, e.Row, e.FirstField)
}

// Is implements errors.Is support
func (e *FieldTagError) Is(target error) bool {
	return target == ErrAmbiguousFieldTag
}

// NewFieldTagError creates a new FieldTagError
func NewFieldTagError(value, firstField, otherField string, row int) *FieldTagError {
	return &FieldTagError{
		Value:      value,
		FirstField: firstField,
		OtherField: otherField,
		Row:        row,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "json"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsInvalidSchema checks if an error is a schema validation error
func IsInvalidSchema(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsEmptyInput checks if an error is an empty input condition
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsAmbiguousFieldTag checks if an error is an ambiguous field tag warning
func IsAmbiguousFieldTag(err error) bool {
	return errors.Is(err, ErrAmbiguousFieldTag)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
