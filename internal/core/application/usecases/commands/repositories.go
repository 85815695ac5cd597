// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"autoservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// CatalogFactory provides access to the service catalog within a transaction.
	CatalogFactory interface {
		ServiceCatalog() ports.ServiceCatalog
	}

	// EmployeeUoW manages transactions for employee-only operations.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// OrderUoW manages transactions for order mutations that do not touch
	// the service catalog. The employee repository is included because
	// every order mutation resolves its acting employee.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EmployeeRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for order composition: creating an order
	// or reconciling its service set prices every requested service
	// against the catalog inside the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   catalog := uow.ServiceCatalog()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		EmployeeRepoFactory
		CatalogFactory
	}

	// UoWFactory creates new unit of work instances for composition operations.
	UoWFactory interface {
		Create() UoW
	}
)
