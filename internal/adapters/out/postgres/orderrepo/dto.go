// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;index"`
	LeadEmployeeID *uuid.UUID `gorm:"type:uuid"`
	Status         int        `gorm:"index"`
	CreatedAt      time.Time
	Active         bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ServiceTaskDTO represents one service task row belonging to an order.
// The employee assignment lives in its own join table, see AssignmentDTO.
type ServiceTaskDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ServiceID  uuid.UUID `gorm:"type:uuid"`
	Name       string
	PriceCents int64
	Status     int
	Completed  bool
}

// TableName maps service tasks to the "order_services" table.
func (ServiceTaskDTO) TableName() string {
	return "order_services"
}

// AssignmentDTO links a service task to the employee working on it.
// A task has at most one assignee.
type AssignmentDTO struct {
	OrderServiceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;index"`
}

// TableName maps assignments to the "order_service_employee" table.
func (AssignmentDTO) TableName() string {
	return "order_service_employee"
}

// HistoryDTO represents one append-only status history row. OrderServiceID
// is nil for overall order status entries. The task reference is weak:
// history survives task removal.
type HistoryDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	OrderServiceID *uuid.UUID
	Status         string
	EmployeeID     uuid.UUID `gorm:"type:uuid"`
	RecordedAt     time.Time
}

// TableName maps history rows to the "order_status_history" table.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database rows:
// the order row, one row per task, one assignment row per assigned task,
// and one row per history entry.
func fromDomain(aggregate *order.Order) (OrderDTO, []ServiceTaskDTO, []AssignmentDTO, []HistoryDTO) {
	orderDTO := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		VehicleID:      aggregate.VehicleID().Bytes(),
		LeadEmployeeID: optionalBytes(aggregate.LeadEmployeeID()),
		Status:         aggregate.Status().Code(),
		CreatedAt:      aggregate.CreatedAt(),
		Active:         aggregate.IsActive(),
	}

	tasks := aggregate.Tasks()
	taskDTOs := make([]ServiceTaskDTO, 0, len(tasks))
	assignmentDTOs := make([]AssignmentDTO, 0, len(tasks))
	for _, task := range tasks {
		taskDTOs = append(taskDTOs, ServiceTaskDTO{
			ID:         task.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			ServiceID:  task.ServiceID().Bytes(),
			Name:       task.Name(),
			PriceCents: task.Price().Cents(),
			Status:     task.Status().Code(),
			Completed:  task.Completed(),
		})
		if assigneeID := task.AssigneeID(); assigneeID != nil {
			assignmentDTOs = append(assignmentDTOs, AssignmentDTO{
				OrderServiceID: task.ID().Bytes(),
				EmployeeID:     assigneeID.Bytes(),
			})
		}
	}

	history := aggregate.History()
	historyDTOs := make([]HistoryDTO, 0, len(history))
	for _, entry := range history {
		historyDTOs = append(historyDTOs, HistoryDTO{
			OrderID:        aggregate.ID().Bytes(),
			OrderServiceID: optionalBytes(entry.TaskID()),
			Status:         entry.Status(),
			EmployeeID:     entry.ActorID().Bytes(),
			RecordedAt:     entry.RecordedAt(),
		})
	}

	return orderDTO, taskDTOs, assignmentDTOs, historyDTOs
}

// toDomain converts database rows back to an order domain aggregate using
// RestoreOrder, wiring task assignments and replaying nothing.
func toDomain(
	dto OrderDTO,
	taskDTOs []ServiceTaskDTO,
	assignmentDTOs []AssignmentDTO,
	historyDTOs []HistoryDTO,
) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	leadEmployeeID, err := optionalUUID(dto.LeadEmployeeID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	assignees := make(map[uuid.UUID]uuid.UUID, len(assignmentDTOs))
	for _, assignment := range assignmentDTOs {
		assignees[assignment.OrderServiceID] = assignment.EmployeeID
	}

	tasks := make([]*order.ServiceTask, 0, len(taskDTOs))
	for _, taskDTO := range taskDTOs {
		task, taskErr := taskToDomain(taskDTO, assignees)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	history := make([]order.HistoryEntry, 0, len(historyDTOs))
	for _, historyDTO := range historyDTOs {
		taskID, historyErr := optionalUUID(historyDTO.OrderServiceID)
		if historyErr != nil {
			return nil, historyErr
		}
		actorID, historyErr := kernel.UUIDFromBytes(historyDTO.EmployeeID[:])
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, order.NewHistoryEntry(
			taskID, historyDTO.Status, actorID, historyDTO.RecordedAt,
		))
	}

	return order.RestoreOrder(
		id, customerID, vehicleID, leadEmployeeID,
		status, dto.CreatedAt, dto.Active, tasks, history,
	)
}

func taskToDomain(dto ServiceTaskDTO, assignees map[uuid.UUID]uuid.UUID) (*order.ServiceTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	status, err := order.TaskStatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	var assigneeID *kernel.UUID
	if raw, ok := assignees[dto.ID]; ok {
		converted, assigneeErr := kernel.UUIDFromBytes(raw[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assigneeID = &converted
	}

	return order.RestoreServiceTask(id, serviceID, dto.Name, price, status, dto.Completed, assigneeID)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
