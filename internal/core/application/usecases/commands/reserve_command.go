package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	ErrReserveCommandIsNotConstructed = errors.New(
		"ReserveCommand must be created via NewReserveCommand constructor",
	)
)

// ReserveCommand represents a request to reserve a vehicle of a category for
// a whole-day rental window.
//
// Example:
//
//	cmd, err := NewReserveCommand(vehicle.SUV, time.Time{}, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid reservation data: %w", err)
//	}
//
//	handler := NewReserveCommandHandler(engine)
//	reservation, err := handler.Handle(ctx, cmd)
type ReserveCommand struct { //nolint:recvcheck //using for validation
	category  vehicle.Category
	startTime time.Time
	days      int

	guard guard.ConstructorGuard
}

// NewReserveCommand creates a command to reserve a vehicle.
// The category must be recognized and the day count positive. A zero start
// time is allowed and means "now"; the engine fills it in from its clock.
func NewReserveCommand(category vehicle.Category, startTime time.Time, days int) (ReserveCommand, error) {
	reserveCommand := ReserveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reserveCommand.setCategory(category),
		reserveCommand.setWindow(startTime, days),
	); err != nil {
		return ReserveCommand{}, err
	}

	return reserveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReserveCommandIsNotConstructed if validation fails.
func (c ReserveCommand) Validate() error {
	return c.guard.Validate(ErrReserveCommandIsNotConstructed)
}

// Category returns the requested vehicle category.
func (c ReserveCommand) Category() vehicle.Category {
	return c.category
}

// StartTime returns the requested opening of the rental window.
// The zero value means the caller left it to the engine's clock.
func (c ReserveCommand) StartTime() time.Time {
	return c.startTime
}

// Days returns the requested duration in whole days.
func (c ReserveCommand) Days() int {
	return c.days
}

func (c *ReserveCommand) setCategory(category vehicle.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *ReserveCommand) setWindow(startTime time.Time, days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("days")
	}

	c.startTime = startTime
	c.days = days
	return nil
}
