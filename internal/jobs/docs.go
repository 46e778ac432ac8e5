// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic back-office monitoring.
//
// # Available Jobs
//
// 1. OperationsSnapshotJob - Runs every minute to log fleet-wide shipment, user and directory counts
// 2. PendingPickupJob - Runs every five minutes to watch the backlog of shipments awaiting pickup
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statsHandler, listHandler, backlogThreshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep running; a failed tick never stops the
// schedule. Failed job starts will stop any already running jobs.
package jobs
