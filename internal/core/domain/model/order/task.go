package order

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
)

// ErrServiceTaskIsNotConstructed is returned when a ServiceTask was not
// created through NewServiceTask or RestoreServiceTask.
var ErrServiceTaskIsNotConstructed = errors.New(
	"ServiceTask must be created via NewServiceTask or RestoreServiceTask")

// ServiceTask is one ordered service within a repair order: the unit the
// task ledger tracks. It carries the catalog reference, the price captured
// at composition time, the completion ("checked") flag, the task status and
// an optional primary assignee.
//
// The checked flag is redundant with the status (received is unchecked,
// everything else is checked) but is persisted separately because the
// storage schema records it as its own column.
type ServiceTask struct {
	id         kernel.UUID
	serviceID  kernel.UUID
	name       string
	price      kernel.Price
	status     TaskStatus
	completed  bool
	assigneeID *kernel.UUID

	isConstructed bool
}

// NewServiceTask creates a task in the received state. assigneeID may be
// nil when no employee is assigned at composition time.
func NewServiceTask(
	id kernel.UUID,
	serviceID kernel.UUID,
	name string,
	price kernel.Price,
	assigneeID *kernel.UUID,
) (*ServiceTask, error) {
	if err := errors.Join(
		id.Validate(),
		serviceID.Validate(),
		price.Validate(),
		validateOptionalID(assigneeID),
	); err != nil {
		return nil, err
	}

	return &ServiceTask{
		id:            id,
		serviceID:     serviceID,
		name:          name,
		price:         price,
		status:        TaskReceived,
		assigneeID:    copyOptionalID(assigneeID),
		isConstructed: true,
	}, nil
}

// RestoreServiceTask rehydrates a task from persistence.
func RestoreServiceTask(
	id kernel.UUID,
	serviceID kernel.UUID,
	name string,
	price kernel.Price,
	status TaskStatus,
	completed bool,
	assigneeID *kernel.UUID,
) (*ServiceTask, error) {
	if err := errors.Join(
		id.Validate(),
		serviceID.Validate(),
		price.Validate(),
		status.Validate(),
		validateOptionalID(assigneeID),
	); err != nil {
		return nil, err
	}

	return &ServiceTask{
		id:            id,
		serviceID:     serviceID,
		name:          name,
		price:         price,
		status:        status,
		completed:     completed,
		assigneeID:    copyOptionalID(assigneeID),
		isConstructed: true,
	}, nil
}

// Validate ensures the task was built through a constructor.
func (t *ServiceTask) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrServiceTaskIsNotConstructed
	}
	return nil
}

// ID returns the task identifier.
func (t *ServiceTask) ID() kernel.UUID {
	return t.id
}

// ServiceID returns the catalog service this task was ordered from.
func (t *ServiceTask) ServiceID() kernel.UUID {
	return t.serviceID
}

// Name returns the service name captured at composition time.
func (t *ServiceTask) Name() string {
	return t.name
}

// Price returns the price captured at composition time.
func (t *ServiceTask) Price() kernel.Price {
	return t.price
}

// Status returns the current task status.
func (t *ServiceTask) Status() TaskStatus {
	return t.status
}

// Completed returns the persisted "checked" flag.
func (t *ServiceTask) Completed() bool {
	return t.completed
}

// AssigneeID returns the primary assigned employee, or nil.
func (t *ServiceTask) AssigneeID() *kernel.UUID {
	return copyOptionalID(t.assigneeID)
}

// IsAssignedTo reports whether employeeID is the task's primary assignee.
func (t *ServiceTask) IsAssignedTo(employeeID kernel.UUID) bool {
	return t.assigneeID != nil && t.assigneeID.IsEqual(employeeID)
}

// setStatus applies a validated status and keeps the checked flag in sync:
// received clears it, in_progress and completed set it.
func (t *ServiceTask) setStatus(status TaskStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	t.completed = status.Checked()
	return nil
}

// assign sets or replaces the primary assignee.
func (t *ServiceTask) assign(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	t.assigneeID = &employeeID
	return nil
}

// clearAssignment removes the primary assignee.
func (t *ServiceTask) clearAssignment() {
	t.assigneeID = nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func copyOptionalID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
