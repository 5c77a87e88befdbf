// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Runs every five seconds to advance active orders
// whose status has not changed for thirty seconds
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(progressOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The progression job uses the cron expression "*/5 * * * * *", polling every
// five seconds. Orders only move once they have been sitting in a status for
// thirty seconds, so each poll is cheap and usually a no-op.
//
// # Error Handling
//
// - Progression failures are logged and retried on the next tick
// - Failed job starts abort application startup
package jobs
