package jobs

import (
	"context"
	"log/slog"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob flags active orders whose rental window has already closed.
// Runs every minute; overdue orders are only logged, never mutated, since a
// late vehicle still has to come back through the regular return operation.
type OverdueWatchJob struct {
	handler queries.GetActiveOrdersQueryHandler
	clock   ports.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueWatchJob creates a new job for spotting overdue rentals.
func NewOverdueWatchJob(
	handler queries.GetActiveOrdersQueryHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the overdue watch job to run every minute.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		active, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", err)
			return
		}

		now := j.clock.Now()
		for _, o := range active {
			if o.EndTime.Before(now) {
				j.logger.WarnContext(ctx, "Order is past its rental window",
					"orderId", o.ID.String(),
					"status", o.Status,
					"endTime", o.EndTime,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every minute)")
	return nil
}

// Stop stops the overdue watch job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}
