// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full error taxonomy of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: unknown identifiers
//   - NotAuthorizedError: ownership check failures
//   - InvalidStateError: forbidden lifecycle transitions
//   - ConflictError: store-level races (duplicate inserts, lost compare-and-swap)
//   - PaymentDeclinedError / PaymentUnavailableError: payment outcomes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// This standardized approach keeps error classification uniform from the domain
// layer up to the HTTP status mapping at the edge.
package errs
