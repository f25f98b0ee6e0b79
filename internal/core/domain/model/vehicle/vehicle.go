package vehicle

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
	// created through the NewVehicle factory method. This ensures all vehicles
	// are properly validated.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a rentable vehicle in the fleet. It is an aggregate root
// that manages vehicle identity and odometer state.
//
// Vehicle follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a recognized category
//   - Odometer reading is non-negative and monotonically non-decreasing
//   - Can only be created through NewVehicle constructor
//
// A vehicle's availability is not stored on the vehicle itself; it is derived
// from pool membership. A vehicle is either in its category's pool or
// referenced by exactly one active order, never both. While a vehicle is out
// on a rental its odometer is frozen at the last known reading; only the
// return operation commits a new value.
type Vehicle struct {
	// id is the unique identifier for the vehicle
	id kernel.UUID

	// category is the fixed classification of the vehicle
	category Category

	// mileage is the current odometer reading
	mileage int

	// isConstructed ensures the vehicle was created via NewVehicle
	isConstructed bool
}

// NewVehicle creates a new Vehicle instance with validation. This is the only
// way to create a valid Vehicle, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the vehicle (must be valid UUID)
//   - category: Vehicle classification (must be a recognized category)
//   - mileage: Initial odometer reading (must be non-negative)
//
// Returns:
//   - *Vehicle: The created vehicle if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Vehicles are created once at fleet provisioning and never destroyed during
// normal operation.
func NewVehicle(id kernel.UUID, category Category, mileage int) (*Vehicle, error) {
	vehicle := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setCategory(category),
		vehicle.setMileage(mileage),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Validate ensures the Vehicle instance was properly constructed through
// NewVehicle. This prevents bypassing validation by directly instantiating
// the struct.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}

	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
// Vehicles are considered equal if they have the same ID.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Category returns the vehicle's classification.
func (v *Vehicle) Category() Category {
	return v.category
}

// Mileage returns the current odometer reading.
func (v *Vehicle) Mileage() int {
	return v.mileage
}

// CommitMileage records a new odometer reading taken when the vehicle is
// returned from a rental.
//
// This method enforces the odometer monotonicity invariant:
//   - The new reading must be greater than or equal to the current reading
//   - An equal reading is valid (an immediate round trip adds no distance)
//
// Returns an error of the invalid-argument class if the new reading is lower
// than the current one ("mileage cannot decrease"). On failure the vehicle
// is left unchanged.
func (v *Vehicle) CommitMileage(newMileage int) error {
	if newMileage < v.mileage {
		return errs.NewValueIsInvalidErrorWithCause("mileage cannot decrease",
			fmt.Errorf("%d is less than current mileage %d", newMileage, v.mileage))
	}

	v.mileage = newMileage
	return nil
}

// setID validates and sets the vehicle's unique identifier.
// This is a private method used only during construction.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// setCategory validates and sets the vehicle's category.
// This is a private method used only during construction.
func (v *Vehicle) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	v.category = category
	return nil
}

// setMileage validates and sets the vehicle's initial odometer reading.
// Mileage must be non-negative.
// This is a private method used only during construction.
func (v *Vehicle) setMileage(mileage int) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%d is negative", mileage))
	}
	v.mileage = mileage
	return nil
}
