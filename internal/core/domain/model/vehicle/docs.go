// Package vehicle provides domain entities and business logic for fleet
// vehicles in the rental system. It implements the Vehicle aggregate root
// and the Category classification that partitions the fleet.
//
// The package includes:
//   - Vehicle: The aggregate root that manages vehicle identity and odometer state
//   - Category: A fixed classification (Sedan, SUV, Van) determining pricing and pool partitioning
//
// Key business rules:
//   - Vehicles must have a valid unique identifier and a recognized category
//   - The odometer reading is non-negative and monotonically non-decreasing
//     over the vehicle's lifetime
//   - Availability is derived from pool membership, not stored on the vehicle
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
