package commands

import (
	"context"

	"rental/internal/core/domain/services"
)

// CancelCommandHandler handles the business logic for reservation
// cancellation. The vehicle returns to the pool with its odometer untouched
// and the order retires to history as Cancelled. Rentals already in progress
// cannot be cancelled, only returned.
type CancelCommandHandler struct {
	engine *services.ReservationEngine
}

// NewCancelCommandHandler creates a handler for cancellation operations.
func NewCancelCommandHandler(engine *services.ReservationEngine) CancelCommandHandler {
	return CancelCommandHandler{
		engine: engine,
	}
}

// Handle processes the cancellation command.
func (h *CancelCommandHandler) Handle(_ context.Context, cmd CancelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.engine.Cancel(cmd.OrderID())
}
