// Package errs provides standardized error types for the ghost kitchen application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// This keeps error classification uniform across the domain, the use case layer,
// and the HTTP adapter that maps errors to response codes.
package errs
