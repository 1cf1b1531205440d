package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig                  = "CONFIG"
	ErrDataUnavailable         = "DATA_UNAVAILABLE"
	ErrMalformedRecord         = "MALFORMED_RECORD"
	ErrCollaboratorUnavailable = "COLLABORATOR_UNAVAILABLE"
	ErrExec                    = "EXEC"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrDataUnavailable code.
// Most wrapped failures in sysmon are reads of an OS counter source.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrDataUnavailable,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Malformed reports a record that could not be parsed. The record text is
// kept in the message so debug logs show what was skipped.
func Malformed(record string, cause error) *Error {
	return &Error{
		Code:    ErrMalformedRecord,
		Message: fmt.Sprintf("malformed record %q", record),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
