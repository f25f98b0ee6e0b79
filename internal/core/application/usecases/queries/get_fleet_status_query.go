package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrGetFleetStatusQueryIsNotConstructed = errors.New(
		"GetFleetStatusQuery must be created via NewGetFleetStatusQuery constructor",
	)
)

// GetFleetStatusQuery retrieves per-category vehicle availability.
type GetFleetStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetStatusQuery creates a query to retrieve fleet availability.
// This is a parameterless query.
func NewGetFleetStatusQuery() GetFleetStatusQuery {
	return GetFleetStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetStatusQueryIsNotConstructed if validation fails.
func (q GetFleetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatusQueryIsNotConstructed)
}

// FleetStatusResponse represents availability of one category, including the
// per-day rate a new reservation would be priced at.
type FleetStatusResponse struct {
	Category   string
	Available  int
	RatePerDay string
}
