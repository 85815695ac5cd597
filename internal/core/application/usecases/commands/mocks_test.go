package commands_test

import (
	"context"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTaskID(ctx context.Context, taskID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) GetService(ctx context.Context, id kernel.UUID) (ports.CatalogService, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.CatalogService), args.Error(1)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mockTx }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) ServiceCatalog() ports.ServiceCatalog {
	args := m.Called()
	return args.Get(0).(ports.ServiceCatalog)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEmployeeUoW struct{ mockTx }

func (m *MockEmployeeUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

func newAdmin(id kernel.UUID) *employee.Employee {
	admin, err := employee.NewEmployee(id, "Grace", employee.RoleAdmin)
	if err != nil {
		panic(err)
	}
	return admin
}

func newMechanic(id kernel.UUID) *employee.Employee {
	mechanic, err := employee.NewEmployee(id, "Viktor", employee.RoleEmployee)
	if err != nil {
		panic(err)
	}
	return mechanic
}

// newOrderWithTask builds a pending order holding one task assigned to
// assigneeID (or unassigned when nil) and returns it with the task id.
func newOrderWithTask(actorID kernel.UUID, assigneeID *kernel.UUID) (*order.Order, kernel.UUID) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, actorID, time.Now().UTC(),
	)
	if err != nil {
		panic(err)
	}

	price, err := kernel.NewPrice(4_500)
	if err != nil {
		panic(err)
	}
	taskID := kernel.NewUUID()
	task, err := order.NewServiceTask(taskID, kernel.NewUUID(), "oil change", price, assigneeID)
	if err != nil {
		panic(err)
	}
	if err = o.AddTask(task, actorID, time.Now().UTC()); err != nil {
		panic(err)
	}

	return o, taskID
}

func testNow() time.Time {
	return time.Now().UTC()
}
