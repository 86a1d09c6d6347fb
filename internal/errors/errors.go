// Package errors provides a lightweight structured error type
// (AssembleError) for category-based classification, plus the
// top-level Reporter that decides whether an error is handled by a
// caller sink, logged, or terminates the process.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an assembly error.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"

	// Scan-phase errors: glob expansion, reads, decode failures
	CategoryScan   ErrorCategory = "scan"
	CategoryDecode ErrorCategory = "decode"

	// Render-phase errors
	CategoryRender ErrorCategory = "render"
	CategoryWrite  ErrorCategory = "write"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Aborts the run
	SeverityError   ErrorSeverity = "error"   // Recovered, run continues
	SeverityWarning ErrorSeverity = "warning" // Degraded output
)

// AssembleError is a structured error with category and context.
type AssembleError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for AssembleError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *AssembleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap supports errors.Is / errors.As chains.
func (e *AssembleError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *AssembleError) WithContext(key string, value any) *AssembleError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new AssembleError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *AssembleError {
	return &AssembleError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new AssembleError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *AssembleError {
	return &AssembleError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// Normalize coerces any error into an AssembleError. Errors that
// already are one pass through unchanged; everything else becomes an
// internal fatal error.
func Normalize(err error) *AssembleError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AssembleError); ok {
		return ae
	}
	return Wrap(err, CategoryInternal, SeverityFatal, "unexpected error")
}
