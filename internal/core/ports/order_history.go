package ports

import (
	"rental/internal/core/domain/model/order"
)

// OrderHistory receives orders that reached a terminal status.
// The reservation engine removes terminal orders from its active index and
// hands them here; whether and how history is retained is the collaborator's
// concern, not the core's.
//
// Record is called under the engine's lock and must not block.
type OrderHistory interface {
	// Record retains a terminal (Completed or Cancelled) order.
	Record(o *order.Order)
}
