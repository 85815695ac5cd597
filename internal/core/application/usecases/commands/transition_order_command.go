package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents an explicit lifecycle transition
// request for an order, such as handing it over for pickup or cancelling
// it. Task-driven status changes do not go through this command; the
// aggregation happens inside the order when tasks change.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// statusCode must be one of the known order status codes.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	statusCode int,
	actorID kernel.UUID,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(statusCode),
		transitionCommand.setActorID(actorID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the resolved target order status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// ActorID returns the employee performing the operation.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(statusCode int) error {
	target, err := order.StatusFromCode(statusCode)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
