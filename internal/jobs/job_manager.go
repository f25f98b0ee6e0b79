package jobs

import (
	"fmt"
	"log/slog"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetReportJob  *FleetReportJob
	overdueWatchJob *OverdueWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	fleetStatusHandler queries.GetFleetStatusQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fleetReportJob:  NewFleetReportJob(fleetStatusHandler, logger),
		overdueWatchJob: NewOverdueWatchJob(activeOrdersHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	if err := jm.overdueWatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.fleetReportJob.Stop()
		return fmt.Errorf("failed to start overdue watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueWatchJob.Stop()
	jm.fleetReportJob.Stop()
}
