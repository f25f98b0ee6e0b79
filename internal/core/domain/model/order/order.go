package order

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a rental order in the system. It is the aggregate root that
// binds exactly one vehicle to a requested time window and tracks the order's
// lifecycle from reservation through pickup to return or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, generated at creation and never reused
//   - References exactly one vehicle; a vehicle is referenced by at most one
//     active order at any time
//   - End time is derived as start time plus the whole-day count, in calendar
//     days (AddDate), so daylight-saving shifts do not skew the window
//   - Status transitions follow the state machine defined by Status
//   - Once Completed or Cancelled, the order is immutable and retained only
//     as history
//
// The Order struct uses private fields to ensure encapsulation. Callers
// receive orders as handles they may read freely; all mutation happens under
// the reservation engine's lock.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// vehicle is the fleet vehicle held by this order
	vehicle *vehicle.Vehicle

	// startTime is when the rental window opens
	startTime time.Time

	// endTime is startTime plus days calendar days
	endTime time.Time

	// days is the requested duration in whole days
	days int

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - v: The vehicle held by the order (must be a constructed Vehicle)
//   - startTime: Opening of the rental window (must be non-zero)
//   - days: Requested duration (must be a positive whole number of days)
//
// Returns:
//   - *Order: The created order in Reserved status if all validations pass
//   - error: Validation error naming the offending parameter otherwise
func NewOrder(id kernel.UUID, v *vehicle.Vehicle, startTime time.Time, days int) (*Order, error) {
	order := &Order{
		status:        Reserved,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setVehicle(v),
		order.setWindow(startTime, days),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Vehicle returns the vehicle held by the order.
func (o *Order) Vehicle() *vehicle.Vehicle {
	return o.vehicle
}

// StartTime returns the opening of the rental window.
func (o *Order) StartTime() time.Time {
	return o.startTime
}

// EndTime returns the close of the rental window:
// start time plus the day count, in calendar days.
func (o *Order) EndTime() time.Time {
	return o.endTime
}

// Days returns the requested duration in whole days.
func (o *Order) Days() int {
	return o.days
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Start marks the rental as picked up, transitioning the order to InProgress.
//
// The order must be in Reserved status. No vehicle movement happens here: the
// vehicle already left the pool when the order was created.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the reservation, transitioning the order to Cancelled.
//
// The order must be in Reserved status; an in-progress rental can only be
// returned. Cancelled is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the vehicle as returned, transitioning the order to
// Completed.
//
// The order must be in InProgress or Reserved status (the latter is an
// immediate round trip). Completed is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setVehicle validates and sets the order's vehicle reference.
// This is a private method used only during construction.
func (o *Order) setVehicle(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	o.vehicle = v
	return nil
}

// setWindow validates and sets the rental window.
// The start time must be present and the day count positive; the end time is
// derived from them in calendar days.
// This is a private method used only during construction.
func (o *Order) setWindow(startTime time.Time, days int) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("days",
			fmt.Errorf("%d is not greater than 0", days))
	}

	o.startTime = startTime
	o.endTime = startTime.AddDate(0, 0, days)
	o.days = days
	return nil
}
