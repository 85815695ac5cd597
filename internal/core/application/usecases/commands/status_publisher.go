package commands

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/ports"
)

// statusPublisher announces committed overall-status changes. Publishing
// happens after commit and is best-effort: a failed publish is logged and
// never surfaced to the caller.
type statusPublisher struct {
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

func newStatusPublisher(notifier ports.StatusNotifier, logger *slog.Logger) statusPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return statusPublisher{notifier: notifier, logger: logger}
}

func (p statusPublisher) publish(ctx context.Context, o *order.Order, actorID kernel.UUID) {
	if p.notifier == nil {
		return
	}

	event := ports.OrderStatusChanged{
		OrderID:    o.ID().String(),
		Status:     o.Status().String(),
		StatusCode: o.Status().Code(),
		ActorID:    actorID.String(),
		ChangedAt:  time.Now().UTC(),
	}
	if err := p.notifier.PublishStatusChanged(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order status change",
			slog.String("order_id", event.OrderID),
			slog.String("status", event.Status),
			slog.Any("error", err),
		)
	}
}
