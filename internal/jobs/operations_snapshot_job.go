package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OperationsSnapshotJob periodically captures the dashboard statistics and
// writes them to the log, giving operations a trail of fleet-wide counts
// even when nobody has the dashboard open.
type OperationsSnapshotJob struct {
	handler queries.GetDashboardStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOperationsSnapshotJob creates a job that logs an operational snapshot
// once a minute.
func NewOperationsSnapshotJob(
	handler queries.GetDashboardStatsQueryHandler,
	logger *slog.Logger,
) *OperationsSnapshotJob {
	return &OperationsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "operations_snapshot_job"),
	}
}

// Start begins the snapshot job, running at the top of every minute.
func (j *OperationsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Operations snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Operations snapshot",
			"total_shipments", stats.TotalShipments,
			"in_transit", stats.InTransitShipments,
			"delivered", stats.DeliveredShipments,
			"active_users", stats.ActiveUsers,
			"hubs", stats.Hubs,
			"routes", stats.Routes,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Operations snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *OperationsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Operations snapshot job stopped")
}
