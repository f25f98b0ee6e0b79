package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var (
	ErrCancelCommandIsNotConstructed = errors.New(
		"CancelCommand must be created via NewCancelCommand constructor",
	)
)

// CancelCommand represents a request to abandon a reservation before pickup.
type CancelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelCommand creates a command to cancel a reservation.
// Returns an error if the order identifier is invalid.
func NewCancelCommand(orderID kernel.UUID) (CancelCommand, error) {
	cancelCommand := CancelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelCommandIsNotConstructed if validation fails.
func (c CancelCommand) Validate() error {
	return c.guard.Validate(ErrCancelCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
