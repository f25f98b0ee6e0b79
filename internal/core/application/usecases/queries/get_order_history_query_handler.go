package queries

import (
	"context"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
)

// OrderLog is the read side of the order archive: retired orders in the
// order they retired.
type OrderLog interface {
	All() []*order.Order
}

// GetOrderHistoryQueryHandler reads retired orders from the archive.
type GetOrderHistoryQueryHandler struct {
	engine *services.ReservationEngine
	log    OrderLog
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// The engine is needed to price each archived order.
func NewGetOrderHistoryQueryHandler(engine *services.ReservationEngine, log OrderLog) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{engine: engine, log: log}
}

// Handle executes the query and returns retired orders, oldest first.
// Cancelled orders carry the total the rental would have cost.
func (h GetOrderHistoryQueryHandler) Handle(
	_ context.Context,
	query GetOrderHistoryQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	retired := h.log.All()
	responses := make([]OrderResponse, 0, len(retired))
	for _, o := range retired {
		response, err := toOrderResponse(h.engine, o)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}
