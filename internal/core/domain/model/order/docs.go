// Package order provides domain entities and business logic for rental order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root binding one vehicle to a requested rental window
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, a vehicle, a start time,
//     and a positive whole-day duration
//   - Order status follows a defined workflow:
//     Reserved -> InProgress -> Completed, with Reserved -> Cancelled permitted
//   - A rental that has started can no longer be cancelled, only returned
//   - Returning directly from Reserved is permitted (an immediate round trip)
//   - Once Completed or Cancelled, an order is immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
