package services

import (
	"fmt"
	"sort"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

// VehiclePool owns the per-category collections of vehicles that are not
// currently assigned to any active order. Within a category the collection is
// kept ordered by ascending odometer reading, so the lowest-mileage vehicle is
// always allocated first. This ordering is a deliberate wear-leveling policy:
// rentals are spread across the fleet instead of exhausting one vehicle.
//
// The pool is not internally synchronized. It is safe only when called under
// the reservation engine's exclusion domain; external callers never touch it
// directly.
type VehiclePool struct {
	vehicles map[vehicle.Category][]*vehicle.Vehicle
}

// NewVehiclePool creates a pool from the initial fleet provisioning.
//
// Every vehicle is validated, must carry the category it is filed under, and
// must appear only once. The per-category collections are copied and sorted
// by ascending mileage, so the caller's slices are not retained.
//
// Returns an error if any vehicle is invalid, miscategorized, or duplicated.
func NewVehiclePool(fleet map[vehicle.Category][]*vehicle.Vehicle) (*VehiclePool, error) {
	pool := &VehiclePool{
		vehicles: make(map[vehicle.Category][]*vehicle.Vehicle, len(fleet)),
	}

	seen := make(map[string]bool)
	for category, vehicles := range fleet {
		if err := category.Validate(); err != nil {
			return nil, err
		}

		sorted := make([]*vehicle.Vehicle, 0, len(vehicles))
		for _, v := range vehicles {
			if err := v.Validate(); err != nil {
				return nil, err
			}
			if v.Category() != category {
				return nil, errs.NewInvariantViolationError(fmt.Sprintf(
					"vehicle %s has category %s but was provisioned under %s",
					v.ID(), v.Category(), category))
			}
			if seen[v.ID().String()] {
				return nil, errs.NewInvariantViolationError(fmt.Sprintf(
					"vehicle %s provisioned more than once", v.ID()))
			}
			seen[v.ID().String()] = true
			sorted = append(sorted, v)
		}

		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Mileage() < sorted[j].Mileage()
		})
		pool.vehicles[category] = sorted
	}

	return pool, nil
}

// Take removes and returns the vehicle with the lowest odometer reading among
// those available in the category.
//
// Fails with an error of the vehicle-unavailable class if the category is
// unknown to the pool or currently has zero available vehicles. There is no
// side effect beyond the removal.
func (p *VehiclePool) Take(category vehicle.Category) (*vehicle.Vehicle, error) {
	available, ok := p.vehicles[category]
	if !ok || len(available) == 0 {
		return nil, errs.NewVehicleUnavailableError(category.String())
	}

	taken := available[0]
	p.vehicles[category] = available[1:]
	return taken, nil
}

// Give reinserts a vehicle into its category's available collection,
// maintaining ascending-odometer order.
//
// Reinsertion can only fail structurally: the vehicle is invalid, its
// category was never provisioned, or it is already present in the pool. All
// of these are programming errors in the caller, reported as
// invariant-violation errors; they are unreachable when the pool is used
// correctly through the reservation engine.
func (p *VehiclePool) Give(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return errs.NewInvariantViolationErrorWithCause("pool reinsertion failed", err)
	}

	available, ok := p.vehicles[v.Category()]
	if !ok {
		return errs.NewInvariantViolationError(fmt.Sprintf(
			"pool reinsertion failed: category %s was never provisioned", v.Category()))
	}

	for _, existing := range available {
		if existing.IsEqual(v) {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"pool reinsertion failed: vehicle %s is already in the pool", v.ID()))
		}
	}

	at := sort.Search(len(available), func(i int) bool {
		return available[i].Mileage() > v.Mileage()
	})
	available = append(available, nil)
	copy(available[at+1:], available[at:])
	available[at] = v
	p.vehicles[v.Category()] = available

	return nil
}

// AvailableCount returns the number of vehicles currently available in the
// category. Unknown categories count as zero.
func (p *VehiclePool) AvailableCount(category vehicle.Category) int {
	return len(p.vehicles[category])
}

// Categories returns the categories the pool was provisioned with, in
// ascending category order. A category remains listed even when it currently
// has zero available vehicles.
func (p *VehiclePool) Categories() []vehicle.Category {
	categories := make([]vehicle.Category, 0, len(p.vehicles))
	for category := range p.vehicles {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
