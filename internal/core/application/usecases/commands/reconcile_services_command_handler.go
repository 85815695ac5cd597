package commands

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
)

// ReconcileServicesCommandHandler handles service set recomposition.
// Prices every requested service against the catalog and lets the order
// reconcile its task set and re-derive its overall status, all in one
// transaction.
type ReconcileServicesCommandHandler struct {
	uowFactory UoWFactory
	publisher  statusPublisher
	logger     *slog.Logger
}

// NewReconcileServicesCommandHandler creates a handler for recomposition operations.
// notifier may be nil when status change publishing is not wired.
func NewReconcileServicesCommandHandler(
	uowFactory UoWFactory,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) ReconcileServicesCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ReconcileServicesCommandHandler{
		uowFactory: uowFactory,
		publisher:  newStatusPublisher(notifier, logger),
		logger:     logger,
	}
}

// Handle processes the recomposition command and returns the order's
// overall status after reconciliation.
// Domain errors (order.ErrOrderLocked, services.ErrActorNotPermitted) pass
// through unchanged for the transport layer to map.
func (h ReconcileServicesCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileServicesCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.StatusUnknown, err
	}

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return order.StatusUnknown, err
	}
	if err = services.NewAccessPolicy().CanReconcileOrder(actor); err != nil {
		return order.StatusUnknown, err
	}

	specs, err := resolveServiceSpecs(ctx, uow.ServiceCatalog(), h.logger, cmd.Services())
	if err != nil {
		return order.StatusUnknown, err
	}

	statusBefore := aggregate.Status()
	if err = aggregate.ReconcileServices(specs, cmd.ActorID(), time.Now().UTC()); err != nil {
		return order.StatusUnknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.StatusUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusUnknown, err
	}

	if aggregate.Status() != statusBefore {
		h.publisher.publish(ctx, aggregate, cmd.ActorID())
	}

	return aggregate.Status(), nil
}
