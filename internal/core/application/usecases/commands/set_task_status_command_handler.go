package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"
)

// SetTaskStatusResult reports the outcome of a task status change: the
// status the task ended up in and the overall order status after
// re-aggregation.
type SetTaskStatusResult struct {
	TaskStatus  order.TaskStatus
	OrderStatus order.Status
}

// SetTaskStatusCommandHandler handles task status changes. Loads the
// owning order, checks the actor is the task's assignee or an admin,
// applies the change and re-derives the overall order status in the same
// transaction, so concurrent task updates never commit a stale aggregate.
type SetTaskStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  statusPublisher
}

// NewSetTaskStatusCommandHandler creates a handler for task status operations.
// notifier may be nil when status change publishing is not wired.
func NewSetTaskStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) SetTaskStatusCommandHandler {
	return SetTaskStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  newStatusPublisher(notifier, logger),
	}
}

// Handle processes the task status change command.
// Returns order.ErrTaskNotFound when no order owns the task, and the
// domain lifecycle errors (order.ErrOrderLocked, services.ErrActorNotPermitted)
// unchanged for the transport layer to map.
func (h SetTaskStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetTaskStatusCommand,
) (SetTaskStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetTaskStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetTaskStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByTaskID(ctx, cmd.TaskID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return SetTaskStatusResult{}, order.ErrTaskNotFound
	}
	if err != nil {
		return SetTaskStatusResult{}, err
	}

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return SetTaskStatusResult{}, err
	}

	task, err := aggregate.TaskByID(cmd.TaskID())
	if err != nil {
		return SetTaskStatusResult{}, err
	}
	if err = services.NewAccessPolicy().CanSetTaskStatus(actor, task); err != nil {
		return SetTaskStatusResult{}, err
	}

	statusBefore := aggregate.Status()
	taskStatus, orderStatus, err := aggregate.SetTaskStatus(
		cmd.TaskID(), cmd.Status(), cmd.ActorID(), time.Now().UTC(),
	)
	if err != nil {
		return SetTaskStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return SetTaskStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetTaskStatusResult{}, err
	}

	if orderStatus != statusBefore {
		h.publisher.publish(ctx, aggregate, cmd.ActorID())
	}

	return SetTaskStatusResult{TaskStatus: taskStatus, OrderStatus: orderStatus}, nil
}
