// Package errors provides unified error handling for chainkit.
// It implements structured error types with machine-readable codes
// and retryable detection for chain and sampler operations.
package errors
