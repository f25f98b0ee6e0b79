package order

import (
	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Reserved ──┬──> InProgress ──> Completed
//	           │         │
//	           │         └───────> Completed (return also legal straight
//	           │                              from Reserved)
//	           └──> Cancelled
//
// Completed and Cancelled are terminal: no further transitions are permitted,
// and terminal orders are removed from the active-order index.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Reserved is the initial status when an order is created.
	// A vehicle is held for the order but the rental has not started.
	Reserved

	// InProgress indicates the renter has picked up the vehicle.
	// An in-progress rental can only be returned, not cancelled.
	InProgress

	// Completed indicates the vehicle has been returned.
	// This is a terminal state.
	Completed

	// Cancelled indicates the reservation was abandoned before pickup.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Reserved:      "Reserved",
		InProgress:    "InProgress",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Reserved:   "Reserved",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Reserved, InProgress, Completed, Cancelled.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Reserved", "InProgress", "Completed", or "Cancelled" for valid
// statuses and "Unknown" for invalid values. It implements the fmt.Stringer
// interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Reserved -> InProgress (renter picks up the vehicle)
//
// Returns (InProgress, nil) on a valid transition, or (0, error) naming the
// expected and actual statuses if the transition is not allowed.
func (s Status) Start() (Status, error) {
	if s != Reserved {
		return 0, errs.NewInvalidStateTransitionError("startRental", Reserved.String(), s.String())
	}

	return InProgress, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Reserved -> Cancelled (reservation abandoned before pickup)
//
// Cancelling an in-progress rental is not permitted: once the vehicle has
// been picked up, only return is valid.
//
// Returns (Cancelled, nil) on a valid transition, or (0, error) naming the
// expected and actual statuses if the transition is not allowed.
func (s Status) Cancel() (Status, error) {
	if s != Reserved {
		return 0, errs.NewInvalidStateTransitionError("cancel", Reserved.String(), s.String())
	}

	return Cancelled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (vehicle returned)
//   - Reserved -> Completed (immediate round trip: return without an
//     explicit pickup)
//
// Returns (Completed, nil) on a valid transition, or (0, error) naming the
// expected and actual statuses if the transition is not allowed.
func (s Status) Complete() (Status, error) {
	if s != Reserved && s != InProgress {
		return 0, errs.NewInvalidStateTransitionError("returnVehicle",
			Reserved.String()+" or "+InProgress.String(), s.String())
	}

	return Completed, nil
}
