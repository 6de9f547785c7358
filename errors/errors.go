package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidInput(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_INPUT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrForbidden(action string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_FORBIDDEN,
		Message:  fmt.Sprintf("Operator role required: %s", action),
	}
}

// Truth Store Errors

// ErrDuplicateMeeting signals an ingest for a meeting id that already has an
// immutable truth record. The original record is never touched.
func ErrDuplicateMeeting(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_DUPLICATE_ID,
		Message:  "Meeting already exists (immutable truth record)",
	}.WithDetail("meeting_id", meetingID)
}

// Derived Store Errors

// ErrAnalysisExists is an internal race signal: a row for the cache key landed
// between the existence check and the insert. Callers resolve it by reading the
// winner's row; it is never surfaced over HTTP.
func ErrAnalysisExists(key string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  "Analysis already exists for cache key",
	}.WithDetail("cache_key", key)
}

// Analysis Agent Errors

func ErrUpstream(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_ERROR,
		Message:  fmt.Sprintf("LLM provider unavailable: %s", provider),
	}
}

func ErrSchemaViolation(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SCHEMA_VIOLATION,
		Message:  "LLM returned output outside the contracted schema",
	}
}

// ErrInconsistentRead signals an analysis row without a matching truth record,
// which indicates a data-integrity bug rather than a valid state.
func ErrInconsistentRead(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Derived row references a meeting with no truth record",
	}.WithDetail("meeting_id", meetingID)
}
