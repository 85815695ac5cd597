package jobs

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PickupReminderJob periodically reports orders that are waiting for their
// customer to pick the vehicle up. Runs every minute and logs one entry per
// waiting order so operators can follow up with the customer.
type PickupReminderJob struct {
	handler queries.GetReadyForPickupOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates a new job for reminding about waiting pickups.
// Uses GetReadyForPickupOrdersQueryHandler to find parked orders every minute.
func NewPickupReminderJob(handler queries.GetReadyForPickupOrdersQueryHandler, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start begins the pickup reminder job to run every minute.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetReadyForPickupOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
			return
		}

		for _, waiting := range orders {
			j.logger.InfoContext(ctx, "Order is waiting for pickup",
				"order_id", waiting.ID.String(),
				"customer_id", waiting.CustomerID.String(),
				"waiting_for", time.Since(waiting.ReadySince).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running every minute)")
	return nil
}

// Stop stops the pickup reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}
