// Package services contains domain services for the rental system.
//
// Domain services implement business logic that does not naturally belong to
// a single aggregate:
//
//   - VehiclePool holds the per-category collections of available vehicles
//     and implements the lowest-mileage-first allocation policy.
//   - RateTable maps categories to exact per-day rates and prices orders.
//   - ReservationEngine owns the pool and the active-order index, serializes
//     all state-mutating operations behind one mutual-exclusion domain, and
//     enforces the order state machine.
//
// VehiclePool and RateTable carry no concurrency control of their own; they
// are mutated exclusively by the ReservationEngine under its lock.
package services
