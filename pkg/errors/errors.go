// Package errors provides custom error types for the ledgerlens system.
// These errors enable programmatic error checking and keep the pipeline's
// failure taxonomy explicit: schema violations abort a run, grain violations
// are surfaced distinctly, and everything else is default-filled upstream.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the ledgerlens system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrFanOut indicates that a key assumed unique matched multiple active rows
	ErrFanOut = errors.New("unexpected fan-out")

	// ErrCanceled indicates that a run was canceled before publishing output
	ErrCanceled = errors.New("run canceled")
)

// ValidationError represents an input schema violation.
// A run that produces one of these must abort before publishing output.
type ValidationError struct {
	Relation string
	Field    string
	Row      int
	Message  string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s row %d, field %s: %s", e.Relation, e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Relation, e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(relation, field string, row int, message string) *ValidationError {
	return &ValidationError{Relation: relation, Field: field, Row: row, Message: message}
}

// FanOutError represents a grain-safety violation: a matching key that is
// assumed unique per active ledger entry produced more than one active match.
type FanOutError struct {
	InvoiceID   int64
	CrossRef    string
	SupplierKey int64
	Matches     int
}

// Error implements the error interface
func (e *FanOutError) Error() string {
	return fmt.Sprintf("invoice %d: key (%s, %d) matched %d active ledger entries, expected at most 1",
		e.InvoiceID, e.CrossRef, e.SupplierKey, e.Matches)
}

// Is implements errors.Is support
func (e *FanOutError) Is(target error) bool {
	return target == ErrFanOut
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
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
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open"
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
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsFanOut checks if an error is a fan-out (grain violation) error
func IsFanOut(err error) bool {
	return errors.Is(err, ErrFanOut)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
