package inmem

import (
	"sync"

	"rental/internal/core/domain/model/order"
)

// OrderArchive retains completed and cancelled orders in memory, in the order
// they retired. It backs the history queries.
//
// Record is invoked from inside the reservation engine's critical section, so
// it must stay cheap and must never call back into the engine. Reads take
// their own lock and may run concurrently with recording.
type OrderArchive struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderArchive creates an empty archive.
func NewOrderArchive() *OrderArchive {
	return &OrderArchive{}
}

// Record appends a retired order to the archive.
func (a *OrderArchive) Record(o *order.Order) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.orders = append(a.orders, o)
}

// All returns a snapshot of the archived orders, oldest first.
// Mutating the returned slice does not affect the archive.
func (a *OrderArchive) All() []*order.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := make([]*order.Order, len(a.orders))
	copy(snapshot, a.orders)
	return snapshot
}
