// Package ports defines the contracts between the reservation core and its
// external collaborators: identifier generation, time, and order history.
// Adapters implement these interfaces; the core never depends on a concrete
// implementation.
package ports

import (
	"rental/internal/core/domain/model/kernel"
)

// IDGenerator produces unique order identifiers.
// Implementations must not produce collisions across the process lifetime.
// The production adapter wraps random UUIDs; tests substitute their own
// source.
type IDGenerator interface {
	// NewOrderID returns a fresh unique identifier for an order.
	// Identifiers are never reused.
	NewOrderID() kernel.UUID
}
