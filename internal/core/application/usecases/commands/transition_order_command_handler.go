package commands

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
)

// TransitionOrderCommandHandler handles explicit lifecycle transitions.
// Only admins may transition orders; the order itself enforces transition
// legality and the submitted-tasks completeness rule.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  statusPublisher
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
// notifier may be nil when status change publishing is not wired.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  newStatusPublisher(notifier, logger),
	}
}

// Handle processes the transition command.
// Domain errors (order.ErrInvalidTransition, order.ErrIncompleteServices,
// services.ErrActorNotPermitted) pass through unchanged for the transport
// layer to map.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = services.NewAccessPolicy().CanTransitionOrder(actor); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.ActorID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.publish(ctx, aggregate, cmd.ActorID())

	return nil
}
