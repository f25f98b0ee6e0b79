package queries

import (
	"context"
	"sort"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
)

// GetFleetStatusQueryHandler reads per-category availability from the engine.
type GetFleetStatusQueryHandler struct {
	engine *services.ReservationEngine
}

// NewGetFleetStatusQueryHandler creates a handler for fleet status queries.
func NewGetFleetStatusQueryHandler(engine *services.ReservationEngine) GetFleetStatusQueryHandler {
	return GetFleetStatusQueryHandler{engine: engine}
}

// Handle executes the query and returns one entry per provisioned category,
// sorted by category name. Categories with zero available vehicles are
// included; a category is only absent if it was never provisioned.
func (h GetFleetStatusQueryHandler) Handle(
	_ context.Context,
	query GetFleetStatusQuery,
) ([]FleetStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := h.engine.FleetStatus()

	categories := make([]vehicle.Category, 0, len(status))
	for category := range status {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].String() < categories[j].String()
	})

	responses := make([]FleetStatusResponse, 0, len(categories))
	for _, category := range categories {
		rate, err := h.engine.RatePerDay(category)
		if err != nil {
			return nil, err
		}
		responses = append(responses, FleetStatusResponse{
			Category:   category.String(),
			Available:  status[category],
			RatePerDay: rate.String(),
		})
	}

	return responses, nil
}
