package commands_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// completedOrder builds an order whose single task is submitted, leaving
// the overall status at completed.
func completedOrder(t *testing.T, adminID kernel.UUID) *order.Order {
	t.Helper()
	aggregate, taskID := newOrderWithTask(adminID, nil)
	_, _, err := aggregate.SetTaskStatus(taskID, order.TaskCompleted, adminID, testNow())
	require.NoError(t, err)
	require.Equal(t, order.StatusCompleted, aggregate.Status())
	return aggregate
}

func TestTransitionOrderCommandHandler_Handle_ReadyForPickup(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	aggregate := completedOrder(t, adminID)
	cmd, _ := commands.NewTransitionOrderCommand(aggregate.ID(), 4, adminID)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", mock.Anything, adminID).Return(newAdmin(adminID), nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("PublishStatusChanged", mock.Anything, mock.AnythingOfType("ports.OrderStatusChanged")).
		Return(nil).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, notifier, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusReadyForPickup, aggregate.Status())
	orderRepo.AssertExpectations(t)
	employeeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_IncompleteServices(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()

	// a stored completed order whose task never got submitted must not
	// reach ready_for_pickup
	price, err := kernel.NewPrice(4_500)
	require.NoError(t, err)
	task, err := order.RestoreServiceTask(
		kernel.NewUUID(), kernel.NewUUID(), "oil change", price, order.TaskReceived, false, nil,
	)
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		order.StatusCompleted, testNow(), true, []*order.ServiceTask{task}, nil,
	)
	require.NoError(t, err)

	cmd, _ := commands.NewTransitionOrderCommand(aggregate.ID(), 4, adminID)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", mock.Anything, adminID).Return(newAdmin(adminID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIncompleteServices)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := completedOrder(t, adminID)
	cmd, _ := commands.NewTransitionOrderCommand(aggregate.ID(), 4, mechanicID)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", mock.Anything, mechanicID).Return(newMechanic(mechanicID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrActorNotPermitted)
	assert.Equal(t, order.StatusCompleted, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	aggregate, _ := newOrderWithTask(adminID, nil)

	// pending order cannot jump straight to ready_for_pickup
	cmd, _ := commands.NewTransitionOrderCommand(aggregate.ID(), 4, adminID)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		employeeRepo.On("Get", mock.Anything, adminID).Return(newAdmin(adminID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
