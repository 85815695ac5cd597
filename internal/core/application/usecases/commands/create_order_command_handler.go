package commands

import (
	"context"
	"log/slog"
	"time"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in pending status; when the command carries an initial
// service set, each service is priced against the catalog and a task is
// opened for it in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// Verifies the actor is permitted to register orders, creates the order in
// pending status and composes the initial service set, all within a single
// transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = services.NewAccessPolicy().CanCreateOrder(actor); err != nil {
		return err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.VehicleID(),
		cmd.LeadEmployeeID(), cmd.ActorID(), now,
	)
	if err != nil {
		return err
	}

	if len(cmd.Services()) > 0 {
		specs, specErr := resolveServiceSpecs(ctx, uow.ServiceCatalog(), h.logger, cmd.Services())
		if specErr != nil {
			return specErr
		}
		if err = newOrder.ReconcileServices(specs, cmd.ActorID(), now); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
