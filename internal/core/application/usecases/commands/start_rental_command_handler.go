package commands

import (
	"context"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
)

// StartRentalCommandHandler handles the business logic for rental pickup.
// The transition is only legal from Reserved status; no vehicle movement
// happens because the vehicle already left the pool at reservation.
type StartRentalCommandHandler struct {
	engine *services.ReservationEngine
}

// NewStartRentalCommandHandler creates a handler for pickup operations.
func NewStartRentalCommandHandler(engine *services.ReservationEngine) StartRentalCommandHandler {
	return StartRentalCommandHandler{
		engine: engine,
	}
}

// Handle processes the pickup command and returns the order in InProgress
// status.
func (h *StartRentalCommandHandler) Handle(_ context.Context, cmd StartRentalCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.engine.StartRental(cmd.OrderID())
}
