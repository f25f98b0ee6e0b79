package services_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestRateTable_Quote(t *testing.T) {
	rates := services.MustNewRateTable(map[vehicle.Category]kernel.Money{
		vehicle.Sedan: mustMoney(t, "49.99"),
		vehicle.SUV:   mustMoney(t, "79.99"),
	})
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should price order as exact rate times days", func(t *testing.T) {
		v := newTestVehicle(t, vehicle.Sedan, 1000)
		o, err := order.NewOrder(kernel.NewUUID(), v, start, 5)
		require.NoError(t, err)

		total, err := rates.Quote(o)

		require.NoError(t, err)
		// Exact decimal arithmetic: no float drift on 49.99 * 5
		assert.Equal(t, "249.95", total.String())
	})

	t.Run("should keep exactness over long durations", func(t *testing.T) {
		v := newTestVehicle(t, vehicle.SUV, 1000)
		o, err := order.NewOrder(kernel.NewUUID(), v, start, 365)
		require.NoError(t, err)

		total, err := rates.Quote(o)

		require.NoError(t, err)
		assert.Equal(t, "29196.35", total.String())
	})

	t.Run("should return error when category has no rate", func(t *testing.T) {
		v := newTestVehicle(t, vehicle.Van, 1000)
		o, err := order.NewOrder(kernel.NewUUID(), v, start, 2)
		require.NoError(t, err)

		_, err = rates.Quote(o)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for unconstructed order", func(t *testing.T) {
		_, err := rates.Quote(&order.Order{})

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestNewRateTable(t *testing.T) {
	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := services.NewRateTable(map[vehicle.Category]kernel.Money{
			vehicle.UnknownCategory: mustMoney(t, "1.00"),
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed rate", func(t *testing.T) {
		_, err := services.NewRateTable(map[vehicle.Category]kernel.Money{
			vehicle.Sedan: {},
		})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
