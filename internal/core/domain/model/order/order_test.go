package order_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), vehicle.Sedan, 10000)
	require.NoError(t, err)
	return v
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validStart := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		v := testVehicle(t)

		o, err := order.NewOrder(validID, v, validStart, 5)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.Vehicle().IsEqual(v))
		assert.Equal(t, validStart, o.StartTime())
		assert.Equal(t, validStart.AddDate(0, 0, 5), o.EndTime())
		assert.Equal(t, 5, o.Days())
		assert.Equal(t, order.Reserved, o.Status())
	})

	t.Run("end time is derived in calendar days", func(t *testing.T) {
		// Window spans a daylight-saving transition; calendar-day arithmetic
		// must land on the same wall-clock time.
		start := time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(validID, testVehicle(t), start, 3)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC), o.EndTime())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, testVehicle(t), validStart, 5)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with nil vehicle", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, validStart, 5)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("should fail with zero start time", func(t *testing.T) {
		o, err := order.NewOrder(validID, testVehicle(t), time.Time{}, 5)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "startTime")
	})

	t.Run("should fail with zero days", func(t *testing.T) {
		o, err := order.NewOrder(validID, testVehicle(t), validStart, 0)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "days")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative days", func(t *testing.T) {
		o, err := order.NewOrder(validID, testVehicle(t), validStart, -5)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, nil, time.Time{}, -1)

		require.Error(t, err)
		assert.Nil(t, o)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "Vehicle must be created")
		assert.Contains(t, err.Error(), "startTime")
	})

	t.Run("should accept one day rental", func(t *testing.T) {
		o, err := order.NewOrder(validID, testVehicle(t), validStart, 1)

		require.NoError(t, err)
		assert.Equal(t, validStart.AddDate(0, 0, 1), o.EndTime())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t),
			time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), 5)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("full lifecycle reserved to completed", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)

		require.NoError(t, o.Start())
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancel from reserved", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("complete directly from reserved", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("starting twice fails with transition error", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)
		require.NoError(t, o.Start())

		err := o.Start()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "expected status Reserved but was InProgress")
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("cancelling an in-progress rental fails", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)
		require.NoError(t, o.Start())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("terminal orders reject all transitions", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), testVehicle(t), start, 5)
		require.NoError(t, o.Complete())

		require.Error(t, o.Start())
		require.Error(t, o.Cancel())
		require.Error(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, testVehicle(t), start, 5)
		o2, _ := order.NewOrder(id1, testVehicle(t), start.AddDate(0, 0, 1), 3)

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, testVehicle(t), start, 5)
		o2, _ := order.NewOrder(id2, testVehicle(t), start, 5)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when other is nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, testVehicle(t), start, 5)

		assert.False(t, o1.IsEqual(nil))
	})
}
