// Package errs provides standardized error types for the rental application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a caller-supplied value violates a precondition
//   - ObjectNotFoundError: a referenced object cannot be found
//   - VehicleUnavailableError: the requested category has no vehicles in the pool
//   - InvalidStateTransitionError: an operation is not legal for the current status
//   - InvariantViolationError: an internal consistency failure (programming error)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify failures
//     with errors.Is without depending on concrete types
//
// All errors are synchronous return-path failures. Nothing in this package
// retries, and no error is ever swallowed by the core.
package errs
