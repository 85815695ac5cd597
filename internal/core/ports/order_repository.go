package ports

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their service tasks, assignments and status history.
type OrderRepository interface {
	// Add persists a new order aggregate with its tasks and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order: the order row, the
	// task set (removed tasks are hard-deleted together with their
	// assignments), and any history entries appended since the load.
	// History rows already persisted are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the full aggregate by id. Implementations lock the
	// order row for the duration of the surrounding transaction so that
	// concurrent aggregations on the same order serialize.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTaskID retrieves the aggregate owning the given service task,
	// with the same locking semantics as Get.
	GetByTaskID(ctx context.Context, taskID kernel.UUID) (*order.Order, error)
}
