// Package apperror defines the coded errors returned at the edges of the
// reporting core: option validation, the report service and data loading.
// The render layer switches on Code rather than on messages.
package apperror

import (
	"errors"
	"fmt"
)

// Codes.
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeDataSource = "DATA_SOURCE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"

	CodeBusinessRule   = "BUSINESS_RULE_VIOLATION"
	CodeNoGroupEnabled = "NO_GROUP_ENABLED"
)

// AppError carries a stable code, a readable message, optional details and
// the underlying cause.
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	// Err stays out of JSON; it may hold driver or network detail.
	Err error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail sets one detail entry and returns e for chaining.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, 1)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// NewValidation reports bad caller input.
func NewValidation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewNotFound reports a missing entity.
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: entity + " not found",
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewBusinessRule reports a rule the request would break. code is usually a
// specific code such as CodeNoGroupEnabled; CodeBusinessRule is the generic one.
func NewBusinessRule(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewDataSource wraps a failure of the external data layer.
func NewDataSource(what string, err error) *AppError {
	return &AppError{Code: CodeDataSource, Message: "failed to load " + what, Err: err}
}

// NewInternal hides err behind a generic message.
func NewInternal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal error", Err: err}
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether err's chain holds an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// HasCode reports whether the first AppError in err's chain has code.
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsNotFound is HasCode(err, CodeNotFound).
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
