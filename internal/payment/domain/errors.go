package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Handlers map these to stable HTTP statuses; internal detail
// stays in server-side logs.
var (
	ErrNotFound             = errors.New("payment not found")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidReasonCode    = errors.New("invalid reason code")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// FieldError describes one invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed field check for a request; creation
// reports all of them together rather than failing fast.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Add appends a field error
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newFieldError(field, message string) error {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}
