package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyForPickupOrdersQueryHandler retrieves orders parked in
// ready_for_pickup. The waiting time is taken from the latest history
// entry recording that status; orders restored without history fall back
// to their creation time.
type GetReadyForPickupOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyForPickupOrdersQueryHandler creates a handler for waiting order queries.
// Requires a GORM database connection for query execution.
func NewGetReadyForPickupOrdersQueryHandler(db *gorm.DB) GetReadyForPickupOrdersQueryHandler {
	return GetReadyForPickupOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by waiting time, longest first.
func (h GetReadyForPickupOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyForPickupOrdersQuery,
) ([]GetReadyForPickupOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			COALESCE(
				(SELECT MAX(h.recorded_at)
				 FROM order_status_history h
				 WHERE h.order_id = o.id AND h.status = ?),
				o.created_at
			) AS ready_since
		FROM orders o
		WHERE o.active AND o.status = ?
		ORDER BY ready_since, o.id
	`, order.StatusReadyForPickup.String(), order.StatusReadyForPickup.Code()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetReadyForPickupOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetReadyForPickupOrdersQueryResponse
		var id uuid.UUID
		var customerID uuid.UUID

		err = rows.Scan(&id, &customerID, &response.ReadySince)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	return orders, rows.Err()
}
