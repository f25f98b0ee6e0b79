// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Queries return read models shaped for display, not domain aggregates.
package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders that are not yet completed or
// cancelled, for monitoring the fleet's outstanding rentals.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(engine)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve all active orders.
// This is a parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderResponse represents one order in the read model, shared between the
// active-orders and history queries.
type OrderResponse struct {
	ID        kernel.UUID
	Status    string
	Category  string
	VehicleID kernel.UUID
	StartTime time.Time
	EndTime   time.Time
	Days      int
	Total     kernel.Money
}
