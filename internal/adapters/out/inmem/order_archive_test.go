package inmem_test

import (
	"sync"
	"testing"
	"time"

	"rental/internal/adapters/out/inmem"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArchivedOrder(t *testing.T) *order.Order {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), vehicle.Sedan, 1000)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), v, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	return o
}

func TestOrderArchive(t *testing.T) {
	t.Run("should keep orders in arrival order", func(t *testing.T) {
		archive := inmem.NewOrderArchive()
		first := newArchivedOrder(t)
		second := newArchivedOrder(t)

		archive.Record(first)
		archive.Record(second)

		all := archive.All()
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})

	t.Run("should return snapshot detached from the archive", func(t *testing.T) {
		archive := inmem.NewOrderArchive()
		archive.Record(newArchivedOrder(t))

		snapshot := archive.All()
		snapshot[0] = nil

		require.Len(t, archive.All(), 1)
		assert.NotNil(t, archive.All()[0])
	})

	t.Run("should tolerate concurrent writers and readers", func(t *testing.T) {
		archive := inmem.NewOrderArchive()

		const writers = 8
		const perWriter = 25
		var done sync.WaitGroup
		done.Add(writers + 1)
		for w := 0; w < writers; w++ {
			go func() {
				defer done.Done()
				for i := 0; i < perWriter; i++ {
					archive.Record(newArchivedOrder(t))
				}
			}()
		}
		go func() {
			defer done.Done()
			for i := 0; i < 100; i++ {
				_ = archive.All()
			}
		}()
		done.Wait()

		assert.Len(t, archive.All(), writers*perWriter)
	})
}
