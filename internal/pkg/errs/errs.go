package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error class. Callers classify failures with
// errors.Is against these values rather than matching concrete types.
var (
	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a caller-supplied value violates a precondition.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrVehicleUnavailable indicates the requested category has no vehicles
	// in the pool at the moment of the call.
	ErrVehicleUnavailable = errors.New("no vehicle available")

	// ErrInvalidStateTransition indicates an operation is not legal for the
	// order's current status.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrInvariantViolation indicates an internal consistency failure. This is
	// a programming-error class and is not expected in correct operation.
	ErrInvariantViolation = errors.New("invariant violation")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a caller-supplied value violates a
// precondition (non-positive day count, decreasing mileage, unknown category).
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError is returned when a referenced object is not in its index:
// the object never existed, or it already reached a terminal state and was removed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VehicleUnavailableError is returned when the requested category has zero
// vehicles in the pool. The caller may retry later or choose another category;
// the engine never falls back to a different category on its own.
type VehicleUnavailableError struct {
	Category string
	Cause    error
}

// NewVehicleUnavailableError creates a VehicleUnavailableError for the named category.
func NewVehicleUnavailableError(category string) *VehicleUnavailableError {
	return &VehicleUnavailableError{Category: category}
}

// NewVehicleUnavailableErrorWithCause creates a VehicleUnavailableError
// wrapping an underlying cause.
func NewVehicleUnavailableErrorWithCause(category string, cause error) *VehicleUnavailableError {
	return &VehicleUnavailableError{Category: category, Cause: cause}
}

func (e *VehicleUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVehicleUnavailable, sanitize(e.Category), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrVehicleUnavailable, sanitize(e.Category))
}

func (e *VehicleUnavailableError) Unwrap() error {
	return ErrVehicleUnavailable
}

// InvalidStateTransitionError is returned when an operation is not legal for
// the order's current status. It names both the status the operation requires
// and the status the order actually has.
type InvalidStateTransitionError struct {
	Operation string
	Expected  string
	Actual    string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the named operation with the expected and actual statuses.
func NewInvalidStateTransitionError(operation, expected, actual string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, Expected: expected, Actual: actual}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s expected status %s but was %s",
		ErrInvalidStateTransition, e.Operation, e.Expected, e.Actual)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvariantViolationError is returned on internal consistency failures, such
// as a pool reinsertion failing structurally. Operations abort on it rather
// than continue with inconsistent state.
type InvariantViolationError struct {
	Details string
	Cause   error
}

// NewInvariantViolationError creates an InvariantViolationError with details
// of the violated invariant.
func NewInvariantViolationError(details string) *InvariantViolationError {
	return &InvariantViolationError{Details: details}
}

// NewInvariantViolationErrorWithCause creates an InvariantViolationError
// wrapping an underlying cause.
func NewInvariantViolationErrorWithCause(details string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Details: details, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantViolation, e.Details, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Details)
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
