package order

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ServiceSpec describes one requested service for order composition:
// the catalog reference with its resolved name and price, plus an optional
// employee assignment. The composition manager resolves prices before
// building specs, so a spec is always priced (possibly at zero when the
// catalog entry was missing).
type ServiceSpec struct {
	taskID     kernel.UUID
	serviceID  kernel.UUID
	name       string
	price      kernel.Price
	assigneeID *kernel.UUID
}

// NewServiceSpec creates a spec for a requested service. A fresh task id is
// generated; it is used only if the reconciliation actually creates a task.
func NewServiceSpec(
	serviceID kernel.UUID,
	name string,
	price kernel.Price,
	assigneeID *kernel.UUID,
) (ServiceSpec, error) {
	if err := errors.Join(
		serviceID.Validate(),
		price.Validate(),
		validateOptionalID(assigneeID),
	); err != nil {
		return ServiceSpec{}, err
	}

	return ServiceSpec{
		taskID:     kernel.NewUUID(),
		serviceID:  serviceID,
		name:       name,
		price:      price,
		assigneeID: copyOptionalID(assigneeID),
	}, nil
}

// ServiceID returns the catalog service reference.
func (s ServiceSpec) ServiceID() kernel.UUID {
	return s.serviceID
}

// AssigneeID returns the requested assignee, or nil.
func (s ServiceSpec) AssigneeID() *kernel.UUID {
	return copyOptionalID(s.assigneeID)
}

// Order is the aggregate root for a repair order. It owns its service
// tasks and its status history; all task and status mutation funnels
// through its methods so the lifecycle invariants hold at every commit.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	vehicleID      kernel.UUID
	leadEmployeeID *kernel.UUID
	status         Status
	createdAt      time.Time
	active         bool
	tasks          []*ServiceTask
	history        []HistoryEntry

	isConstructed bool
}

// NewOrder creates an order in pending status with its opening history
// entry. leadEmployeeID may be nil when no employee has taken the order yet.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	leadEmployeeID *kernel.UUID,
	actorID kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vehicleID.Validate(),
		validateOptionalID(leadEmployeeID),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:             id,
		customerID:     customerID,
		vehicleID:      vehicleID,
		leadEmployeeID: copyOptionalID(leadEmployeeID),
		status:         StatusPending,
		createdAt:      createdAt,
		active:         true,
		isConstructed:  true,
	}
	o.appendHistory(nil, StatusPending.String(), actorID, createdAt)

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without replaying its
// lifecycle. The stored status and history are trusted as-is.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	leadEmployeeID *kernel.UUID,
	status Status,
	createdAt time.Time,
	active bool,
	tasks []*ServiceTask,
	history []HistoryEntry,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vehicleID.Validate(),
		validateOptionalID(leadEmployeeID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		vehicleID:      vehicleID,
		leadEmployeeID: copyOptionalID(leadEmployeeID),
		status:         status,
		createdAt:      createdAt,
		active:         active,
		tasks:          tasks,
		history:        history,
		isConstructed:  true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VehicleID returns the serviced vehicle reference.
func (o *Order) VehicleID() kernel.UUID {
	return o.vehicleID
}

// LeadEmployeeID returns the employee responsible for the order, or nil.
func (o *Order) LeadEmployeeID() *kernel.UUID {
	return copyOptionalID(o.leadEmployeeID)
}

// Status returns the overall order status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsActive returns the active flag.
func (o *Order) IsActive() bool {
	return o.active
}

// Deactivate clears the active flag. Queries hide inactive orders.
func (o *Order) Deactivate() {
	o.active = false
}

// Tasks returns the service tasks. The slice is a copy; the tasks are the
// aggregate's own and must not be mutated directly.
func (o *Order) Tasks() []*ServiceTask {
	tasks := make([]*ServiceTask, len(o.tasks))
	copy(tasks, o.tasks)
	return tasks
}

// TaskByID returns the task with the given id, or ErrTaskNotFound.
func (o *Order) TaskByID(taskID kernel.UUID) (*ServiceTask, error) {
	for _, t := range o.tasks {
		if t.ID().IsEqual(taskID) {
			return t, nil
		}
	}
	return nil, ErrTaskNotFound
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// Total returns the sum of all task prices.
func (o *Order) Total() kernel.Price {
	total := kernel.ZeroPrice()
	for _, t := range o.tasks {
		total = total.Add(t.Price())
	}
	return total
}

// AddTask appends a task at order composition time and re-aggregates the
// overall status. Rejected with ErrOrderLocked on done or cancelled orders.
func (o *Order) AddTask(task *ServiceTask, actorID kernel.UUID, now time.Time) error {
	if err := errors.Join(task.Validate(), actorID.Validate()); err != nil {
		return err
	}
	if o.status.IsLocked() {
		return ErrOrderLocked
	}

	o.tasks = append(o.tasks, task)
	o.reaggregate(actorID, now)
	return nil
}

// SetTaskStatus applies a task-level status change: the task ledger
// operation. It records the task history entry, re-aggregates the overall
// status and records an order-level entry when the aggregate changed.
// Returns the new task status and the (possibly changed) overall status.
//
// Fails with ErrInvalidStatus for an undefined status, ErrOrderLocked on a
// done or cancelled order, and ErrTaskNotFound when the task is not part
// of this order. History is append-only: repeating the same status adds a
// new entry each time.
func (o *Order) SetTaskStatus(
	taskID kernel.UUID,
	status TaskStatus,
	actorID kernel.UUID,
	now time.Time,
) (TaskStatus, Status, error) {
	if err := errors.Join(actorID.Validate(), status.Validate()); err != nil {
		return TaskStatusUnknown, StatusUnknown, err
	}
	if o.status.IsLocked() {
		return TaskStatusUnknown, StatusUnknown, ErrOrderLocked
	}

	task, err := o.TaskByID(taskID)
	if err != nil {
		return TaskStatusUnknown, StatusUnknown, err
	}

	if err = task.setStatus(status); err != nil {
		return TaskStatusUnknown, StatusUnknown, err
	}
	o.appendHistory(&taskID, status.String(), actorID, now)

	o.reaggregate(actorID, now)

	return task.Status(), o.status, nil
}

// TransitionTo applies an explicit lifecycle transition requested by an
// actor. This is the authoritative gate for the overall status: legality
// is checked against the current status before any mutation, and forward
// transitions into completed, ready_for_pickup or done additionally
// require every task to be submitted (a zero-task order can never reach
// them).
func (o *Order) TransitionTo(target Status, actorID kernel.UUID, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if target.RequiresSubmittedTasks() && !o.allTasksSubmitted() {
		return ErrIncompleteServices
	}

	o.status = newStatus
	o.appendHistory(nil, newStatus.String(), actorID, now)
	return nil
}

// ReconcileServices reconciles the requested service set against the
// current tasks:
//
//   - tasks whose service is no longer requested are removed (hard delete,
//     their history survives),
//   - requested services without a task get a new task in received state,
//   - tasks whose requested assignee differs get the assignment updated in
//     place, or cleared when no assignee is requested.
//
// Afterwards the overall status is re-aggregated under the sticky guard:
// emptying the service list regresses a pending/in_progress/completed
// order to pending but never touches ready_for_pickup or done.
// Rejected with ErrOrderLocked on done or cancelled orders.
func (o *Order) ReconcileServices(specs []ServiceSpec, actorID kernel.UUID, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.status.IsLocked() {
		return ErrOrderLocked
	}

	requested := make(map[kernel.UUID]ServiceSpec, len(specs))
	for _, spec := range specs {
		requested[spec.serviceID] = spec
	}

	kept := o.tasks[:0]
	existing := make(map[kernel.UUID]*ServiceTask, len(o.tasks))
	for _, t := range o.tasks {
		if _, ok := requested[t.ServiceID()]; !ok {
			continue
		}
		kept = append(kept, t)
		existing[t.ServiceID()] = t
	}
	o.tasks = kept

	for _, spec := range specs {
		task, ok := existing[spec.serviceID]
		if !ok {
			created, err := NewServiceTask(spec.taskID, spec.serviceID, spec.name, spec.price, spec.assigneeID)
			if err != nil {
				return err
			}
			o.tasks = append(o.tasks, created)
			existing[spec.serviceID] = created
			continue
		}

		if err := o.syncAssignment(task, spec.assigneeID); err != nil {
			return err
		}
	}

	o.reaggregate(actorID, now)
	return nil
}

// syncAssignment aligns a kept task's assignee with the requested one.
func (o *Order) syncAssignment(task *ServiceTask, assigneeID *kernel.UUID) error {
	switch {
	case assigneeID == nil && task.AssigneeID() != nil:
		task.clearAssignment()
	case assigneeID != nil && !task.IsAssignedTo(*assigneeID):
		return task.assign(*assigneeID)
	}
	return nil
}

// reaggregate recomputes the overall status from the task set and records
// a history entry when it changed. Returns whether a change was applied.
func (o *Order) reaggregate(actorID kernel.UUID, now time.Time) bool {
	aggregated := AggregateStatus(o.status, o.tasks)
	if aggregated == o.status {
		return false
	}

	o.status = aggregated
	o.appendHistory(nil, aggregated.String(), actorID, now)
	return true
}

// allTasksSubmitted reports whether the order has at least one task and
// every task has been submitted.
func (o *Order) allTasksSubmitted() bool {
	if len(o.tasks) == 0 {
		return false
	}
	for _, t := range o.tasks {
		if !t.Status().Submitted() {
			return false
		}
	}
	return true
}

func (o *Order) appendHistory(taskID *kernel.UUID, status string, actorID kernel.UUID, at time.Time) {
	o.history = append(o.history, NewHistoryEntry(taskID, status, actorID, at))
}
