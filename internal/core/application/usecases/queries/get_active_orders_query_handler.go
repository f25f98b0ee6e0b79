package queries

import (
	"context"
	"sort"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
)

// GetActiveOrdersQueryHandler reads the engine's active-order index.
// The engine produces a consistent snapshot under its lock; the handler
// shapes it into the read model and prices each order.
type GetActiveOrdersQueryHandler struct {
	engine *services.ReservationEngine
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
func NewGetActiveOrdersQueryHandler(engine *services.ReservationEngine) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{engine: engine}
}

// Handle executes the query and returns active orders sorted by start time,
// earliest first, with ID as tiebreaker for a stable listing.
func (h GetActiveOrdersQueryHandler) Handle(
	_ context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := h.engine.ActiveOrders()
	sort.Slice(active, func(i, j int) bool {
		if !active[i].StartTime().Equal(active[j].StartTime()) {
			return active[i].StartTime().Before(active[j].StartTime())
		}
		return active[i].ID().String() < active[j].ID().String()
	})

	responses := make([]OrderResponse, 0, len(active))
	for _, o := range active {
		response, err := toOrderResponse(h.engine, o)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func toOrderResponse(engine *services.ReservationEngine, o *order.Order) (OrderResponse, error) {
	total, err := engine.Quote(o)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:        o.ID(),
		Status:    o.Status().String(),
		Category:  o.Vehicle().Category().String(),
		VehicleID: o.Vehicle().ID(),
		StartTime: o.StartTime(),
		EndTime:   o.EndTime(),
		Days:      o.Days(),
		Total:     total,
	}, nil
}
