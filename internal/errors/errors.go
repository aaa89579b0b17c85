package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryUsage     Category = "usage"
	CategorySerialize Category = "serialize"
	CategorySnapshot  Category = "snapshot"
	CategoryConfig    Category = "config"
)

// HarnessError is a structured error with a stable code and an optional
// fix suggestion surfaced in assertion output.
type HarnessError struct {
	// Code is a unique error identifier (e.g., "U001").
	Code string

	// Category is the error type (usage, snapshot, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HarnessError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HarnessError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a longer explanation to the error.
func (e *HarnessError) WithDetail(format string, args ...any) *HarnessError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HarnessError) WithSuggestion(s string) *HarnessError {
	e.Suggestion = s
	return e
}

// Wrap attaches an underlying cause.
func (e *HarnessError) Wrap(err error) *HarnessError {
	e.Wrapped = err
	return e
}

// Format renders the error for human consumption, one section per line.
func (e *HarnessError) Format() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Detail != "" {
		sb.WriteString("\n  ")
		sb.WriteString(e.Detail)
	}
	if e.Suggestion != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(e.Suggestion)
	}
	if e.Wrapped != nil {
		sb.WriteString("\n  cause: ")
		sb.WriteString(e.Wrapped.Error())
	}
	return sb.String()
}

// New creates a HarnessError with the given code, category, and message.
func New(code string, category Category, format string, args ...any) *HarnessError {
	return &HarnessError{
		Code:     code,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
