package services

import (
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

// RateTable maps each vehicle category to its exact per-day rental rate.
// Rates are decimal amounts, not floating point, so multi-day totals never
// accumulate rounding drift. The table is supplied at engine construction
// and immutable thereafter.
type RateTable struct {
	rates map[vehicle.Category]kernel.Money
}

// NewRateTable creates a rate table from per-category rates.
// Every category and every rate must be valid; the map is copied so later
// changes by the caller have no effect.
func NewRateTable(rates map[vehicle.Category]kernel.Money) (RateTable, error) {
	table := RateTable{
		rates: make(map[vehicle.Category]kernel.Money, len(rates)),
	}

	for category, rate := range rates {
		if err := category.Validate(); err != nil {
			return RateTable{}, err
		}
		if err := rate.Validate(); err != nil {
			return RateTable{}, err
		}
		table.rates[category] = rate
	}

	return table, nil
}

// MustNewRateTable is like NewRateTable but panics on invalid input.
// Intended for wiring with literal rates, where an error is a programming
// mistake.
func MustNewRateTable(rates map[vehicle.Category]kernel.Money) RateTable {
	table, err := NewRateTable(rates)
	if err != nil {
		panic(err)
	}
	return table
}

// RatePerDay returns the per-day rate for the category.
// Fails if no rate is configured for the category.
func (t RateTable) RatePerDay(category vehicle.Category) (kernel.Money, error) {
	rate, ok := t.rates[category]
	if !ok {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("no rate configured for %s", category))
	}
	return rate, nil
}

// Quote prices an order: per-day rate of the vehicle's category multiplied by
// the order's whole-day duration. This is a pure function; it never mutates
// the order and may be called at any point in the order's lifecycle.
func (t RateTable) Quote(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	rate, err := t.RatePerDay(o.Vehicle().Category())
	if err != nil {
		return kernel.Money{}, err
	}

	return rate.MulInt(int64(o.Days())), nil
}
