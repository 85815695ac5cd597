package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrReconcileServicesCommandIsNotConstructed = errors.New(
	"ReconcileServicesCommand must be created via NewReconcileServicesCommand constructor",
)

// ReconcileServicesCommand represents a request to replace an order's
// service set with the given one. Services already on the order are kept
// (their progress survives), missing ones get new tasks, and tasks whose
// service was dropped are removed. An empty list clears all tasks.
type ReconcileServicesCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	services []ServiceRequest
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileServicesCommand creates a command to recompose an order's
// service set. The service list may be empty.
func NewReconcileServicesCommand(
	orderID kernel.UUID,
	services []ServiceRequest,
	actorID kernel.UUID,
) (ReconcileServicesCommand, error) {
	reconcileCommand := ReconcileServicesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reconcileCommand.setOrderID(orderID),
		reconcileCommand.setServices(services),
		reconcileCommand.setActorID(actorID),
	); err != nil {
		return ReconcileServicesCommand{}, err
	}

	return reconcileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileServicesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileServicesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to recompose.
func (c ReconcileServicesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Services returns the requested service set.
func (c ReconcileServicesCommand) Services() []ServiceRequest {
	return c.services
}

// ActorID returns the employee performing the operation.
func (c ReconcileServicesCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReconcileServicesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReconcileServicesCommand) setServices(services []ServiceRequest) error {
	if err := validateServiceRequests(services); err != nil {
		return err
	}

	c.services = services
	return nil
}

func (c *ReconcileServicesCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
