// Package errors defines the application-level error type used at the
// CLI boundary. Domain packages return their own typed errors (invalid
// channels, exhausted palette space); AppError wraps those with a
// category and context before they reach the user.
package errors

import (
	"fmt"
	"time"
)

// AppError represents an application-specific error with additional context
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]interface{}
}

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorUnknown ErrorType = iota
	ErrorValidation
	ErrorUsage
	ErrorUI
	ErrorInternal
)

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
		Context:   make(map[string]interface{}),
	}
}

// Wrap creates a new AppError wrapping an existing error
func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errorType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   make(map[string]interface{}),
	}
}

// WithContext adds context to an AppError
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	e.Context[key] = value
	return e
}

// GetTypeString returns a human-readable string for the error type
func (e *AppError) GetTypeString() string {
	switch e.Type {
	case ErrorValidation:
		return "Validation Error"
	case ErrorUsage:
		return "Usage Error"
	case ErrorUI:
		return "UI Error"
	case ErrorInternal:
		return "Internal Error"
	default:
		return "Unknown Error"
	}
}

// Common error constructors
func NewValidationError(message string, cause error) *AppError {
	return Wrap(ErrorValidation, message, cause)
}

func NewUsageError(message string, cause error) *AppError {
	return Wrap(ErrorUsage, message, cause)
}

func NewUIError(message string, cause error) *AppError {
	return Wrap(ErrorUI, message, cause)
}
