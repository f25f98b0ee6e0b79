package inmem

import (
	"rental/internal/core/domain/model/kernel"
)

// UUIDGenerator produces random order identifiers.
// Collisions are not a practical concern at version 4 randomness.
type UUIDGenerator struct{}

// NewUUIDGenerator creates the production identifier source.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewOrderID returns a fresh random identifier.
func (UUIDGenerator) NewOrderID() kernel.UUID {
	return kernel.NewUUID()
}
