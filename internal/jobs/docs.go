// Package jobs provides scheduled background tasks for the rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the reservation core. The core itself
// has no background tasks; jobs only call its public read API.
//
// # Available Jobs
//
// 1. FleetReportJob - Runs every 30 seconds to log per-category availability
// 2. OverdueWatchJob - Runs every minute to flag active orders past their window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(fleetStatusHandler, activeOrdersHandler, clock, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs on shutdown, before the process exits
//	<-shutdownSignal
//	jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are observational: they log what they see and never mutate
// reservation state, so a failed run is logged and the next tick retries.
package jobs
