package services

import (
	"sync"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ReservationEngine is the core of the rental system. It exclusively owns the
// vehicle pool and the active-order index, and serializes every state-mutating
// operation (reserve, start, cancel, return) through a single mutual-exclusion
// domain covering both.
//
// Key responsibilities:
//   - Allocating vehicles from the shared pool under concurrent access
//   - Enforcing the order state machine and odometer monotonicity
//   - Guaranteeing the pool never double-allocates nor loses a vehicle
//
// Concurrency model: many callers may invoke operations on one shared engine
// concurrently. All mutations and snapshot reads take the engine's mutex; the
// critical sections are short (in-memory index and slice manipulation only),
// and no operation ever blocks waiting for a vehicle to become available;
// unavailability is reported immediately. Order and Vehicle values handed
// back to a caller may be read freely once obtained: the engine never mutates
// a terminal order, and mutates an out-of-pool vehicle only through the
// serialized return path.
//
// Conservation invariant: at all times, for every category, the vehicles in
// the pool plus the vehicles referenced by active orders equal the vehicles
// provisioned at construction.
type ReservationEngine struct {
	mu sync.Mutex

	// pool holds the available vehicles; guarded by mu
	pool *VehiclePool

	// activeOrders maps order ID to non-terminal orders; guarded by mu
	activeOrders map[string]*order.Order

	rates   RateTable
	idGen   ports.IDGenerator
	clock   ports.Clock
	history ports.OrderHistory
}

// NewReservationEngine creates an engine over the provisioned fleet.
//
// Parameters:
//   - fleet: initial category to vehicle-collection mapping; the engine does
//     not create vehicles itself
//   - rates: per-day rates per category, immutable after construction
//   - idGen: unique order identifier source
//   - clock: current-time source, used when a caller omits a start time
//   - history: sink for terminal orders
//
// Returns an error if any collaborator is missing or the fleet fails pool
// validation.
func NewReservationEngine(
	fleet map[vehicle.Category][]*vehicle.Vehicle,
	rates RateTable,
	idGen ports.IDGenerator,
	clock ports.Clock,
	history ports.OrderHistory,
) (*ReservationEngine, error) {
	if idGen == nil {
		return nil, errs.NewValueIsRequiredError("idGen")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	if history == nil {
		return nil, errs.NewValueIsRequiredError("history")
	}

	pool, err := NewVehiclePool(fleet)
	if err != nil {
		return nil, err
	}

	return &ReservationEngine{
		pool:         pool,
		activeOrders: make(map[string]*order.Order),
		rates:        rates,
		idGen:        idGen,
		clock:        clock,
		history:      history,
	}, nil
}

// Reserve allocates the lowest-mileage vehicle of the category and creates an
// order in Reserved status for the requested window.
//
// Validation happens before any mutation: the category must be recognized and
// the day count positive, both reported as invalid-argument errors naming the
// offending parameter. A zero startTime means "now" and is filled in from the
// engine's clock.
//
// If the category has no available vehicle the call fails immediately with a
// vehicle-unavailable error; the engine never falls back to another category
// and never queues the caller. Of N concurrent reservations racing for the
// last vehicle of a category, exactly one succeeds.
func (e *ReservationEngine) Reserve(category vehicle.Category, startTime time.Time, days int) (*order.Order, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, errs.NewValueIsInvalidError("days")
	}
	if startTime.IsZero() {
		startTime = e.clock.Now()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.pool.Take(category)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(e.idGen.NewOrderID(), v, startTime, days)
	if err != nil {
		// Arguments were validated above, so this is unreachable in correct
		// operation; hand the vehicle back so it is not lost.
		if giveErr := e.pool.Give(v); giveErr != nil {
			return nil, giveErr
		}
		return nil, err
	}

	e.activeOrders[o.ID().String()] = o
	return o, nil
}

// StartRental marks the order's vehicle as picked up, transitioning the order
// from Reserved to InProgress. No vehicle movement happens: the vehicle
// already left the pool at reservation.
//
// Fails with an object-not-found error if the order is not in the active
// index, or an invalid-state-transition error if it is not Reserved.
func (e *ReservationEngine) StartRental(orderID kernel.UUID) (*order.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, err := e.lookup(orderID)
	if err != nil {
		return nil, err
	}

	if err := o.Start(); err != nil {
		return nil, err
	}

	return o, nil
}

// Cancel abandons a reservation before pickup. The order transitions to
// Cancelled, the vehicle returns to the pool with its odometer untouched (no
// rental occurred), and the order leaves the active index for the history
// sink.
//
// Cancelling an in-progress or terminal order is not permitted; in-progress
// rentals can only be returned, and terminal orders are no longer in the
// index, so referencing them fails with an object-not-found error.
func (e *ReservationEngine) Cancel(orderID kernel.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, err := e.lookup(orderID)
	if err != nil {
		return err
	}

	if err := o.Cancel(); err != nil {
		return err
	}

	if err := e.pool.Give(o.Vehicle()); err != nil {
		return err
	}

	e.retire(o)
	return nil
}

// ReturnVehicle completes a rental: the new odometer reading is committed,
// the order transitions to Completed, the vehicle rejoins the pool, and the
// order leaves the active index for the history sink. The updated vehicle is
// returned for billing or inspection by the caller.
//
// A return is legal from InProgress and also directly from Reserved, which is
// treated as an immediate round trip. The new mileage must be greater than or
// equal to the vehicle's current reading; otherwise the call fails with an
// invalid-argument error and nothing is mutated.
func (e *ReservationEngine) ReturnVehicle(orderID kernel.UUID, newMileage int) (*vehicle.Vehicle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, err := e.lookup(orderID)
	if err != nil {
		return nil, err
	}

	// Check the transition before committing the mileage so an illegal
	// status leaves the odometer untouched.
	if _, err := o.Status().Complete(); err != nil {
		return nil, err
	}

	if err := o.Vehicle().CommitMileage(newMileage); err != nil {
		return nil, err
	}

	if err := o.Complete(); err != nil {
		return nil, err
	}

	if err := e.pool.Give(o.Vehicle()); err != nil {
		return nil, err
	}

	e.retire(o)
	return o.Vehicle(), nil
}

// Quote prices an order: per-day rate of the vehicle's category times the
// order's day count, in exact decimal arithmetic. Quote is a pure read and
// needs no lock; the order handle was fully constructed before it was handed
// out and its pricing inputs never change.
func (e *ReservationEngine) Quote(o *order.Order) (kernel.Money, error) {
	return e.rates.Quote(o)
}

// RatePerDay returns the per-day rate for the category. Rates are immutable,
// so no lock is taken.
func (e *ReservationEngine) RatePerDay(category vehicle.Category) (kernel.Money, error) {
	return e.rates.RatePerDay(category)
}

// ActiveOrders returns a snapshot of all non-terminal orders, taken under the
// engine's lock. The slice is fresh on every call; mutating it does not
// affect the engine.
func (e *ReservationEngine) ActiveOrders() []*order.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	orders := make([]*order.Order, 0, len(e.activeOrders))
	for _, o := range e.activeOrders {
		orders = append(orders, o)
	}
	return orders
}

// AvailableCount returns the number of vehicles currently available in the
// category.
func (e *ReservationEngine) AvailableCount(category vehicle.Category) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pool.AvailableCount(category)
}

// FleetStatus returns a consistent snapshot of pool availability per
// provisioned category, taken under the engine's lock.
func (e *ReservationEngine) FleetStatus() map[vehicle.Category]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := make(map[vehicle.Category]int)
	for _, category := range e.pool.Categories() {
		status[category] = e.pool.AvailableCount(category)
	}
	return status
}

// lookup finds an active order by its identifier.
// Must be called with e.mu held.
func (e *ReservationEngine) lookup(orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	o, ok := e.activeOrders[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return o, nil
}

// retire removes a terminal order from the active index and hands it to the
// history sink. Must be called with e.mu held and only after the order
// reached a terminal status.
func (e *ReservationEngine) retire(o *order.Order) {
	delete(e.activeOrders, o.ID().String())
	e.history.Record(o)
}
