package vehicle

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Category classifies a vehicle within the fleet. The category determines
// both the per-day rental rate and which pool partition the vehicle lives in.
//
// The set is fixed for now (Sedan, SUV, Van) but deliberately open to
// extension: adding a category means adding a constant here, a string mapping
// below, and a rate table entry at engine construction.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// Sedan is the standard passenger car category.
	Sedan

	// SUV is the sport utility vehicle category.
	SUV

	// Van is the cargo/passenger van category.
	Van
)

// getCategoryStrings returns a map of Category values to their string
// representations. All categories are included for string conversion.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		Sedan:           "Sedan",
		SUV:             "SUV",
		Van:             "Van",
	}
}

// getValidCategoryStrings returns a map of only valid Category values.
// Only valid categories are included to support validation.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Sedan: "Sedan",
		SUV:   "SUV",
		Van:   "Van",
	}
}

// CategoryFromString parses a category name into a Category value.
// Matching is exact on the canonical names ("Sedan", "SUV", "Van").
// Returns an error naming the offending value if the name is not recognized.
//
// This function is used when accepting categories from external sources
// such as the HTTP adapter and the fleet configuration.
func CategoryFromString(s string) (Category, error) {
	for category, name := range getValidCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a recognized category", s))
}

// Validate checks if the Category value is valid.
//
// Valid categories are: Sedan, SUV, Van.
// UnknownCategory (0) and any other values are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
//
// Returns "Sedan", "SUV", or "Van" for valid categories and "Unknown" for
// invalid values. It implements the fmt.Stringer interface and is safe to
// call on any Category value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
