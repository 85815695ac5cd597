package ports

import (
	"context"

	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"
)

// EmployeeRepository resolves actor identities for capability checks.
type EmployeeRepository interface {
	// Get retrieves an employee by id.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// Add persists a new employee record.
	Add(ctx context.Context, aggregate *employee.Employee) error
}
