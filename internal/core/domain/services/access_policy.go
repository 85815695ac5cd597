package services

import (
	"errors"

	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/order"
)

// ErrActorNotPermitted is returned when an actor's role does not allow the
// requested operation.
var ErrActorNotPermitted = errors.New("actor is not permitted to perform this operation")

// AccessPolicy is a domain service deciding which actors may perform which
// core operations. The core never checks credentials; it receives an
// already-resolved employee and gates on the employee's role:
//
//   - order creation, lifecycle transitions and order recomposition
//     require an admin,
//   - a task-status change is allowed for an admin or for the employee
//     assigned to that task.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateOrder reports whether the actor may register a new order.
func (AccessPolicy) CanCreateOrder(actor *employee.Employee) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrActorNotPermitted
	}
	return nil
}

// CanTransitionOrder reports whether the actor may apply an explicit
// lifecycle transition.
func (AccessPolicy) CanTransitionOrder(actor *employee.Employee) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrActorNotPermitted
	}
	return nil
}

// CanReconcileOrder reports whether the actor may recompose an order's
// service set.
func (AccessPolicy) CanReconcileOrder(actor *employee.Employee) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrActorNotPermitted
	}
	return nil
}

// CanSetTaskStatus reports whether the actor may change the status of the
// given task.
func (AccessPolicy) CanSetTaskStatus(actor *employee.Employee, task *order.ServiceTask) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() || task.IsAssignedTo(actor.ID()) {
		return nil
	}
	return ErrActorNotPermitted
}
