package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Chain lifecycle errors
const (
	// ErrCodeExhausted indicates an adapted sequence has no more values.
	ErrCodeExhausted ErrorCode = "EXHAUSTED"
	// ErrCodeGeneration indicates a generation closure failed.
	ErrCodeGeneration ErrorCode = "GENERATION_FAILED"
	// ErrCodeFork indicates forking a chain failed.
	ErrCodeFork ErrorCode = "FORK_FAILED"
	// ErrCodeSource indicates an underlying value source failed.
	ErrCodeSource ErrorCode = "SOURCE_ERROR"
)

// Cancellation errors (retryable where noted)
const (
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeCancelled indicates the operation was cancelled by its context.
	ErrCodeCancelled ErrorCode = "CANCELLED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeConfig indicates configuration could not be loaded or validated.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	// A failed Next commits nothing to the chain's state cell, so
	// generation and source failures are safe to retry.
	ErrCodeGeneration: true,
	ErrCodeSource:     true,
	ErrCodeTimeout:    true,
	ErrCodeExhausted:  false,
	ErrCodeCancelled:  false,
	ErrCodeInternal:   false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
