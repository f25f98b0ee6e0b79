package commands

import (
	"context"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
)

// ReturnVehicleCommandHandler handles the business logic for vehicle return.
// The engine commits the odometer reading, completes the order, and reinserts
// the vehicle into the pool, all in one critical section; on any failure
// nothing is mutated.
type ReturnVehicleCommandHandler struct {
	engine *services.ReservationEngine
}

// NewReturnVehicleCommandHandler creates a handler for return operations.
func NewReturnVehicleCommandHandler(engine *services.ReservationEngine) ReturnVehicleCommandHandler {
	return ReturnVehicleCommandHandler{
		engine: engine,
	}
}

// Handle processes the return command and returns the vehicle with its
// updated odometer reading.
func (h *ReturnVehicleCommandHandler) Handle(_ context.Context, cmd ReturnVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.engine.ReturnVehicle(cmd.OrderID(), cmd.Mileage())
}
