package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"

	"github.com/robfig/cron/v3"
)

// PendingPickupJob periodically counts shipments still waiting for pickup
// and raises a log warning when the backlog grows, so operations can spot
// stuck intake before customers call.
type PendingPickupJob struct {
	handler          queries.ListShipmentsQueryHandler
	backlogThreshold int
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewPendingPickupJob creates a job that checks the pickup backlog every
// five minutes. backlogThreshold is the count above which the job escalates
// from info to warning.
func NewPendingPickupJob(
	handler queries.ListShipmentsQueryHandler,
	backlogThreshold int,
	logger *slog.Logger,
) *PendingPickupJob {
	return &PendingPickupJob{
		handler:          handler,
		backlogThreshold: backlogThreshold,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "pending_pickup_job"),
	}
}

// Start begins the backlog check, running every five minutes.
func (j *PendingPickupJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewListShipmentsQuery(0, queries.MaxListLimit, shipment.Created.String())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending pickup job failed to build query", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending pickup job failed", "error", err)
			return
		}

		pending := len(result.Shipments)
		if result.HasMore || pending > j.backlogThreshold {
			j.logger.WarnContext(ctx, "Pickup backlog is growing",
				"pending", pending, "threshold", j.backlogThreshold, "truncated", result.HasMore)
			return
		}

		j.logger.InfoContext(ctx, "Pickup backlog checked", "pending", pending)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending pickup job started (running every five minutes)")
	return nil
}

// Stop stops the backlog check.
func (j *PendingPickupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending pickup job stopped")
}
