// Package guard provides a defensive construction pattern for domain objects.
// By embedding a ConstructorGuard, value objects and entities can detect
// whether they were created through their designated constructor function
// or left as an invalid zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil error is passed as the validation error. This ensures that
// validation always fails with a meaningful message even if no specific
// error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions and not by direct struct initialization.
//
// The guard works by maintaining an internal flag that is only set to true
// when the object is created through the proper constructor. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(id kernel.UUID) Order {
//	    return Order{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (o Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects to distinguish them from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validation error. If validationError is nil, ErrDefaultConstructorGuard is
// returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
