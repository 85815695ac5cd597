package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves open orders from the database.
// Done and cancelled orders are excluded, as are orders flagged inactive.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time so the
// longest-waiting orders come first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vehicle_id,
			status,
			created_at
		FROM orders
		WHERE active AND status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.StatusDone.Code(), order.StatusCancelled.Code()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id uuid.UUID
		var customerID uuid.UUID
		var vehicleID uuid.UUID
		var statusCode int

		err = rows.Scan(&id, &customerID, &vehicleID, &statusCode, &response.CreatedAt)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromCode(statusCode)
		if statusErr != nil {
			return nil, statusErr
		}
		response.StatusCode = status.Code()
		response.Status = status.String()

		orders = append(orders, response)
	}

	return orders, rows.Err()
}
