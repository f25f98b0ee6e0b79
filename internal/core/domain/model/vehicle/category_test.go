package vehicle_test

import (
	"testing"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	t.Run("should pass for valid categories", func(t *testing.T) {
		for _, category := range []vehicle.Category{vehicle.Sedan, vehicle.SUV, vehicle.Van} {
			require.NoError(t, category.Validate(), "category %s should be valid", category)
		}
	})

	t.Run("should fail for unknown category", func(t *testing.T) {
		err := vehicle.UnknownCategory.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid category")
	})

	t.Run("should fail for out of range category", func(t *testing.T) {
		err := vehicle.Category(99).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategory_String(t *testing.T) {
	t.Run("should return canonical names", func(t *testing.T) {
		assert.Equal(t, "Sedan", vehicle.Sedan.String())
		assert.Equal(t, "SUV", vehicle.SUV.String())
		assert.Equal(t, "Van", vehicle.Van.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", vehicle.UnknownCategory.String())
		assert.Equal(t, "Unknown", vehicle.Category(42).String())
	})
}

func TestCategoryFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected vehicle.Category
		}{
			{"Sedan", vehicle.Sedan},
			{"SUV", vehicle.SUV},
			{"Van", vehicle.Van},
		}

		for _, tc := range testCases {
			category, err := vehicle.CategoryFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		}
	})

	t.Run("should fail for unrecognized names", func(t *testing.T) {
		for _, input := range []string{"", "sedan", "Truck", "Unknown"} {
			category, err := vehicle.CategoryFromString(input)

			require.Error(t, err, "input %q should not parse", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, vehicle.UnknownCategory, category)
		}
	})

	t.Run("round trips with String", func(t *testing.T) {
		for _, category := range []vehicle.Category{vehicle.Sedan, vehicle.SUV, vehicle.Van} {
			parsed, err := vehicle.CategoryFromString(category.String())

			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})
}
