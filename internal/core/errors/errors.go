// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Validation errors.
var (
	// ErrInvalidInput indicates invalid input was provided. Surfaced to the
	// caller, never retried.
	ErrInvalidInput = errors.New("invalid input")
)

// Analysis errors.
var (
	// ErrAnalysisFailed indicates the classifier or resolver failed internally.
	ErrAnalysisFailed = errors.New("emotion analysis failed")
)

// Store errors. These are always recovered locally: logged and treated as a
// cache miss, empty history, or no-op delete. They never fail an analyze call.
var (
	// ErrStoreUnavailable indicates the key-value store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreDisabled indicates no store is configured.
	ErrStoreDisabled = errors.New("store is not enabled")

	// ErrCacheNotFound indicates a cache entry was not found or has expired.
	ErrCacheNotFound = errors.New("cache entry not found")

	// ErrNotFound is a generic not found error.
	ErrNotFound = errors.New("not found")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
