package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	operationsSnapshotJob *OperationsSnapshotJob
	pendingPickupJob      *PendingPickupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	statsHandler queries.GetDashboardStatsQueryHandler,
	listHandler queries.ListShipmentsQueryHandler,
	pickupBacklogThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		operationsSnapshotJob: NewOperationsSnapshotJob(statsHandler, logger),
		pendingPickupJob:      NewPendingPickupJob(listHandler, pickupBacklogThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.operationsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start operations snapshot job: %w", err)
	}

	if err := jm.pendingPickupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.operationsSnapshotJob.Stop()
		return fmt.Errorf("failed to start pending pickup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingPickupJob.Stop()
	jm.operationsSnapshotJob.Stop()
}
