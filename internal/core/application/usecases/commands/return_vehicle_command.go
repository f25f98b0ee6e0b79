package commands

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	ErrReturnVehicleCommandIsNotConstructed = errors.New(
		"ReturnVehicleCommand must be created via NewReturnVehicleCommand constructor",
	)
)

// ReturnVehicleCommand represents a request to complete a rental with the
// odometer reading taken at return.
type ReturnVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	mileage int

	guard guard.ConstructorGuard
}

// NewReturnVehicleCommand creates a command to return a rented vehicle.
// The order identifier must be valid and the reading non-negative; whether
// the reading is consistent with the vehicle's current odometer is decided
// by the engine against live state.
func NewReturnVehicleCommand(orderID kernel.UUID, mileage int) (ReturnVehicleCommand, error) {
	returnCommand := ReturnVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setMileage(mileage),
	); err != nil {
		return ReturnVehicleCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnVehicleCommandIsNotConstructed if validation fails.
func (c ReturnVehicleCommand) Validate() error {
	return c.guard.Validate(ErrReturnVehicleCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c ReturnVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Mileage returns the odometer reading taken at return.
func (c ReturnVehicleCommand) Mileage() int {
	return c.mileage
}

func (c *ReturnVehicleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnVehicleCommand) setMileage(mileage int) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%d is negative", mileage))
	}

	c.mileage = mileage
	return nil
}
