package commands

import (
	"context"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
)

// ReserveCommandHandler handles the business logic for vehicle reservation.
// Allocation and order creation happen atomically inside the engine; of
// concurrent requests for a category's last vehicle, exactly one succeeds.
type ReserveCommandHandler struct {
	engine *services.ReservationEngine
}

// NewReserveCommandHandler creates a handler for reservation operations.
func NewReserveCommandHandler(engine *services.ReservationEngine) ReserveCommandHandler {
	return ReserveCommandHandler{
		engine: engine,
	}
}

// Handle processes the reservation command and returns the created order in
// Reserved status.
func (h *ReserveCommandHandler) Handle(_ context.Context, cmd ReserveCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.engine.Reserve(cmd.Category(), cmd.StartTime(), cmd.Days())
}
