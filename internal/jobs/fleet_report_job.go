package jobs

import (
	"context"
	"log/slog"

	"rental/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FleetReportJob periodically logs per-category fleet availability.
// Runs every 30 seconds against the engine's consistent snapshot.
type FleetReportJob struct {
	handler queries.GetFleetStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFleetReportJob creates a new job for reporting fleet utilization.
func NewFleetReportJob(handler queries.GetFleetStatusQueryHandler, logger *slog.Logger) *FleetReportJob {
	return &FleetReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fleet_report_job"),
	}
}

// Start begins the fleet report job to run every 30 seconds.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		status, err := j.handler.Handle(ctx, queries.NewGetFleetStatusQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet report job failed", "error", err)
			return
		}

		for _, entry := range status {
			j.logger.InfoContext(ctx, "Fleet availability",
				"category", entry.Category,
				"available", entry.Available,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started (running every 30 seconds)")
	return nil
}

// Stop stops the fleet report job.
func (j *FleetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
