package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// AppError is the unified chainkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Exhausted creates a new AppError for a sequence with no more values.
func Exhausted(source string) *AppError {
	return &AppError{
		Code: ErrCodeExhausted, Message: fmt.Sprintf("The %s has no more values.", source),
		Retryable: false,
		Details:   map[string]any{"source": source},
	}
}

// Generation creates a new AppError for a failed generation closure.
func Generation(stage string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeGeneration, Message: fmt.Sprintf("The %s closure failed.", stage),
		Retryable: true,
		Details:   map[string]any{"stage": stage}, Cause: cause,
	}
}

// Fork creates a new AppError for a failed fork.
func Fork(cause error) *AppError {
	return &AppError{
		Code: ErrCodeFork, Message: "Forking the chain failed.",
		Retryable: false, Cause: cause,
	}
}

// Source creates a new AppError for a failed underlying source.
func Source(source string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSource, Message: fmt.Sprintf("The %s source encountered an error.", source),
		Retryable: true,
		Details:   map[string]any{"source": source}, Cause: cause,
	}
}

// Timeout creates a new AppError for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The operation took too long.",
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// Cancelled creates a new AppError for an operation cancelled by its context.
func Cancelled(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeCancelled, Message: "The operation was cancelled.",
		Retryable: false,
		Details:   map[string]any{"operation": operation}, Cause: cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// Config creates a new AppError for a configuration failure.
func Config(reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConfig, Message: fmt.Sprintf("Configuration error: %s", reason),
		Retryable: false, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

// From normalizes any error into an AppError. AppErrors pass through
// unchanged; context errors map to CANCELLED / TIMEOUT; everything
// else becomes INTERNAL_ERROR with the original as cause.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	if stderrors.Is(err, context.Canceled) {
		return Cancelled("", err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return Timeout("").WithCause(err)
	}
	return Internal(err)
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsRetryable reports whether the error (or any error it wraps) is a
// retryable AppError. Non-AppError values are not retryable.
func IsRetryable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Retryable
	}
	return false
}

// HasCode reports whether the error wraps an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
