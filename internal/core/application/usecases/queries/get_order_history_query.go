package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves completed and cancelled orders, oldest
// first.
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query to retrieve retired orders.
// This is a parameterless query.
func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}
