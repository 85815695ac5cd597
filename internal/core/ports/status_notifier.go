package ports

import (
	"context"
	"time"
)

// OrderStatusChanged describes one committed overall-status change,
// published for downstream consumers (customer notifications, reporting).
type OrderStatusChanged struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	StatusCode int       `json:"status_code"`
	ActorID    string    `json:"actor_id"`
	ChangedAt  time.Time `json:"changed_at"`
}

// StatusNotifier publishes order status changes after they were committed.
// Publishing is best-effort: a failed publish must not roll back the
// already-committed change.
type StatusNotifier interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
