package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/guard"
)

var ErrSetTaskStatusCommandIsNotConstructed = errors.New(
	"SetTaskStatusCommand must be created via NewSetTaskStatusCommand constructor",
)

// SetTaskStatusCommand represents a request to move one service task to a
// new status. The numeric status code is resolved at construction time, so
// an unknown code fails before any transaction is opened.
type SetTaskStatusCommand struct { //nolint:recvcheck //using for validation
	taskID  kernel.UUID
	status  order.TaskStatus
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetTaskStatusCommand creates a command to change a task's status.
// statusCode must be one of the known task status codes.
func NewSetTaskStatusCommand(
	taskID kernel.UUID,
	statusCode int,
	actorID kernel.UUID,
) (SetTaskStatusCommand, error) {
	taskCommand := SetTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskCommand.setTaskID(taskID),
		taskCommand.setStatus(statusCode),
		taskCommand.setActorID(actorID),
	); err != nil {
		return SetTaskStatusCommand{}, err
	}

	return taskCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTaskStatusCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to change.
func (c SetTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Status returns the resolved target task status.
func (c SetTaskStatusCommand) Status() order.TaskStatus {
	return c.status
}

// ActorID returns the employee performing the operation.
func (c SetTaskStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *SetTaskStatusCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *SetTaskStatusCommand) setStatus(statusCode int) error {
	status, err := order.TaskStatusFromCode(statusCode)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *SetTaskStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
