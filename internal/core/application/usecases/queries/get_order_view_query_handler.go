package queries

import (
	"context"
	"database/sql"
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderViewQueryHandler loads the aggregated order view straight from
// the database. Status codes are stored numerically and resolved to their
// names through the domain status types, so reads and writes cannot drift.
type GetOrderViewQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderViewQueryHandler creates a handler for aggregated order views.
// Requires a GORM database connection for query execution.
func NewGetOrderViewQueryHandler(db *gorm.DB) GetOrderViewQueryHandler {
	return GetOrderViewQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderViewQueryHandler) Handle(
	ctx context.Context,
	query GetOrderViewQuery,
) (GetOrderViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	response.Tasks, err = h.loadTasks(ctx, query.OrderID())
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}
	for _, task := range response.Tasks {
		response.TotalCents += task.PriceCents
	}

	response.History, err = h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderViewQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderViewQueryResponse, error) {
	var response GetOrderViewQueryResponse
	var id uuid.UUID
	var customerID uuid.UUID
	var vehicleID uuid.UUID
	var leadEmployeeID uuid.NullUUID
	var statusCode int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vehicle_id,
			lead_employee_id,
			status,
			created_at,
			active
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &customerID, &vehicleID, &leadEmployeeID,
		&statusCode, &response.CreatedAt, &response.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundError("order_id", orderID.String())
	}
	if err != nil {
		return response, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return response, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return response, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return response, err
	}
	if response.LeadEmployeeID, err = optionalUUID(leadEmployeeID); err != nil {
		return response, err
	}

	status, err := order.StatusFromCode(statusCode)
	if err != nil {
		return response, err
	}
	response.StatusCode = status.Code()
	response.Status = status.String()
	response.StatusDisplayName = status.DisplayName()

	return response, nil
}

func (h GetOrderViewQueryHandler) loadTasks(
	ctx context.Context,
	orderID kernel.UUID,
) ([]TaskView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.service_id,
			s.name,
			s.price_cents,
			s.status,
			s.completed,
			a.employee_id
		FROM order_services s
		LEFT JOIN order_service_employee a ON a.order_service_id = s.id
		WHERE s.order_id = ?
		ORDER BY s.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]TaskView, 0)
	for rows.Next() {
		var task TaskView
		var id uuid.UUID
		var serviceID uuid.UUID
		var assigneeID uuid.NullUUID
		var statusCode int

		err = rows.Scan(&id, &serviceID, &task.Name, &task.PriceCents,
			&statusCode, &task.Completed, &assigneeID)
		if err != nil {
			return nil, err
		}

		if task.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if task.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
			return nil, err
		}
		if task.AssigneeID, err = optionalUUID(assigneeID); err != nil {
			return nil, err
		}

		status, statusErr := order.TaskStatusFromCode(statusCode)
		if statusErr != nil {
			return nil, statusErr
		}
		task.StatusCode = status.Code()
		task.Status = status.String()

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (h GetOrderViewQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]HistoryEntryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_service_id,
			status,
			employee_id,
			recorded_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryEntryView, 0)
	for rows.Next() {
		var entry HistoryEntryView
		var taskID uuid.NullUUID
		var actorID uuid.UUID

		err = rows.Scan(&taskID, &entry.Status, &actorID, &entry.RecordedAt)
		if err != nil {
			return nil, err
		}

		if entry.TaskID, err = optionalUUID(taskID); err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	return history, rows.Err()
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
