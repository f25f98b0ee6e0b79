package jobs_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/jobs"

	"github.com/stretchr/testify/require"
)

func newTestJobManager(t *testing.T) *jobs.JobManager {
	t.Helper()

	v, err := vehicle.NewVehicle(kernel.NewUUID(), vehicle.Sedan, 1000)
	require.NoError(t, err)

	rate, err := kernel.MoneyFromString("49.99")
	require.NoError(t, err)

	rates, err := services.NewRateTable(map[vehicle.Category]kernel.Money{
		vehicle.Sedan: rate,
	})
	require.NoError(t, err)

	engine, err := services.NewReservationEngine(
		map[vehicle.Category][]*vehicle.Vehicle{
			vehicle.Sedan: {v},
		},
		rates,
		inmem.NewUUIDGenerator(),
		inmem.NewSystemClock(),
		inmem.NewOrderArchive(),
	)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return jobs.NewJobManager(
		queries.NewGetFleetStatusQueryHandler(engine),
		queries.NewGetActiveOrdersQueryHandler(engine),
		inmem.NewSystemClock(),
		logger,
	)
}

func TestJobManager_Lifecycle(t *testing.T) {
	t.Run("should start and stop all jobs", func(t *testing.T) {
		jobManager := newTestJobManager(t)

		require.NoError(t, jobManager.StartAll())
		jobManager.StopAll()
	})

	t.Run("should tolerate stop without start", func(t *testing.T) {
		jobManager := newTestJobManager(t)

		jobManager.StopAll()
	})

	t.Run("should stop before schedulers fire when stopped promptly", func(t *testing.T) {
		jobManager := newTestJobManager(t)

		require.NoError(t, jobManager.StartAll())

		// Shutdown must not hang waiting on the next cron tick.
		done := make(chan struct{})
		go func() {
			jobManager.StopAll()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("StopAll did not return in time")
		}
	})
}
