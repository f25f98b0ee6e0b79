// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: a validated command object and a
// handler that delegates to the reservation engine.
package commands
