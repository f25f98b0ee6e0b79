package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var (
	ErrStartRentalCommandIsNotConstructed = errors.New(
		"StartRentalCommand must be created via NewStartRentalCommand constructor",
	)
)

// StartRentalCommand represents a request to mark a reserved vehicle as
// picked up.
type StartRentalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRentalCommand creates a command to start a rental.
// Returns an error if the order identifier is invalid.
func NewStartRentalCommand(orderID kernel.UUID) (StartRentalCommand, error) {
	startCommand := StartRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setOrderID(orderID); err != nil {
		return StartRentalCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartRentalCommandIsNotConstructed if validation fails.
func (c StartRentalCommand) Validate() error {
	return c.guard.Validate(ErrStartRentalCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start.
func (c StartRentalCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartRentalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
