// Package apperror is the error model of the whole API: every business
// failure becomes an AppError with a machine code, a message, optional
// details, and the HTTP status the error middleware should answer with.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	CodeValidation = "VALIDATION_ERROR"

	CodeBusinessRule = "BUSINESS_RULE_VIOLATION"

	// CodeResolution: a referenced catalog item or customer does not
	// resolve. Non-fatal while editing a line, fatal on submission.
	CodeResolution = "RESOLUTION_ERROR"

	// CodeSubmission: the sales store rejected a payload. The message
	// reaches the caller verbatim so the draft can be corrected.
	CodeSubmission = "SUBMISSION_ERROR"

	// CodeAggregation: a report input record is malformed.
	CodeAggregation = "AGGREGATION_ERROR"

	CodeConcurrentModification = "CONCURRENT_MODIFICATION"

	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeDuplicate    = "DUPLICATE_ENTRY"
)

// AppError is a coded error. Details carry structured context such as
// the offending field or line number; Err is the wrapped cause and is
// never serialized.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds one context entry and returns the error for chaining.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidation reports bad input, answered with 400.
func NewValidation(message string) *AppError {
	return newError(CodeValidation, http.StatusBadRequest, message)
}

// NewResolution reports a reference that does not resolve, 422.
func NewResolution(entity string, ref any) *AppError {
	return newError(CodeResolution, http.StatusUnprocessableEntity,
		fmt.Sprintf("%s reference does not resolve", entity)).
		WithDetail("entity", entity).
		WithDetail("ref", ref)
}

// NewSubmission wraps a sales-store rejection, 422, keeping the
// rejection message intact for the editing user.
func NewSubmission(message string, cause error) *AppError {
	return newError(CodeSubmission, http.StatusUnprocessableEntity, message).
		WithCause(cause)
}

// NewAggregation reports malformed report input, 422.
func NewAggregation(message string) *AppError {
	return newError(CodeAggregation, http.StatusUnprocessableEntity, message)
}

// NewNotFound reports a missing entity, 404.
func NewNotFound(entity string, id any) *AppError {
	return newError(CodeNotFound, http.StatusNotFound,
		fmt.Sprintf("%s not found", entity)).
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// NewBusinessRule reports a domain rule violation under the caller's
// code, 422.
func NewBusinessRule(code, message string) *AppError {
	return newError(code, http.StatusUnprocessableEntity, message)
}

// NewConcurrentModification reports a lost optimistic-lock race, 409.
func NewConcurrentModification(entity string, id any) *AppError {
	return newError(CodeConcurrentModification, http.StatusConflict,
		"Record was modified by another user. Please refresh and try again.").
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// NewInternal hides the cause behind a generic 500.
func NewInternal(err error) *AppError {
	return newError(CodeInternal, http.StatusInternalServerError,
		"Internal server error").WithCause(err)
}

// NewUnauthorized reports a failed or missing authentication, 401.
func NewUnauthorized(message string) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, message)
}

// NewForbidden reports insufficient permissions, 403.
func NewForbidden(message string) *AppError {
	return newError(CodeForbidden, http.StatusForbidden, message)
}

// NewConflict reports a state conflict, 409.
func NewConflict(message string) *AppError {
	return newError(CodeConflict, http.StatusConflict, message)
}

// NewDuplicate reports a uniqueness violation, 409.
func NewDuplicate(entity, field, value string) *AppError {
	return newError(CodeDuplicate, http.StatusConflict,
		fmt.Sprintf("%s with this %s already exists", entity, field)).
		WithDetail("entity", entity).
		WithDetail("field", field).
		WithDetail("value", value)
}

// AsAppError finds an AppError anywhere in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether the chain carries an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// GetHTTPStatus maps any error to a response status; unknown errors
// answer 500.
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

func hasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsNotFound reports a CodeNotFound error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation reports a CodeValidation error.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsConcurrentModification reports a lost optimistic-lock race.
func IsConcurrentModification(err error) bool {
	return hasCode(err, CodeConcurrentModification)
}
