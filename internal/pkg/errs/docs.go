// Package errs provides standardized error types for the shipment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind a caller can act on:
//   - ObjectNotFoundError: a lookup by id, name or email found nothing
//   - InvalidTransitionError: a status change from a terminal or non-adjacent state
//   - IntegrityViolationError: a missing referenced row, a duplicate unique value,
//     or an order that is already linked to a package
//   - PartialFailureError: a multi-row operation that was not committed as a whole
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details, including the offending field
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Callers never see a bare store error string: adapters translate driver failures
// into one of these kinds before returning them.
package errs
