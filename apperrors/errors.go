// Package apperrors provides the structured error taxonomy returned by the
// calculators and rendered by the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInputRange   ErrorCode = "INVALID_INPUT_RANGE"
	ErrCodeDivisionByZeroGuard ErrorCode = "DIVISION_BY_ZERO_GUARD"
	ErrCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrCodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode    `json:"code"`
	Message   string       `json:"message"`
	Details   string       `json:"details,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, strings.Join(parts, "; "))
}

// NewValidationError builds the error for a set of rejected fields. A
// division-by-zero violation takes precedence over plain range violations.
func NewValidationError(fields []FieldError) *StandardError {
	code := ErrCodeInvalidInputRange
	message := "input value outside declared bounds"
	for _, f := range fields {
		if f.Code == ErrCodeDivisionByZeroGuard {
			code = ErrCodeDivisionByZeroGuard
			message = "divisor must be greater than zero"
			break
		}
	}
	return &StandardError{
		Code:      code,
		Message:   message,
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputRangeError creates an error for a single out-of-bounds field.
func NewInvalidInputRangeError(field, details string) *StandardError {
	return NewValidationError([]FieldError{{
		Field:   field,
		Message: details,
		Code:    ErrCodeInvalidInputRange,
	}})
}

// NewDivisionByZeroError creates an error for a divisor that is not positive.
func NewDivisionByZeroError(field string) *StandardError {
	return NewValidationError([]FieldError{{
		Field:   field,
		Message: "must be greater than zero",
		Code:    ErrCodeDivisionByZeroGuard,
	}})
}

// NewInvalidRequestError creates an error for a request that could not be decoded.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "invalid request",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "internal error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// As extracts a StandardError from an error chain.
func As(err error) (*StandardError, bool) {
	var se *StandardError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsValidation reports whether err rejects caller input.
func IsValidation(err error) bool {
	se, ok := As(err)
	if !ok {
		return false
	}
	return se.Code == ErrCodeInvalidInputRange || se.Code == ErrCodeDivisionByZeroGuard
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	se, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch se.Code {
	case ErrCodeInvalidInputRange, ErrCodeDivisionByZeroGuard, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
