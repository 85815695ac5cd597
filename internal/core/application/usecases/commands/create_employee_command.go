package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand represents a request to register a shop employee.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	name       string
	role       employee.Role

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
// role must be one of the known role names.
func NewCreateEmployeeCommand(
	employeeID kernel.UUID,
	name string,
	role string,
) (CreateEmployeeCommand, error) {
	employeeCommand := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		employeeCommand.setEmployeeID(employeeID),
		employeeCommand.setName(name),
		employeeCommand.setRole(role),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the employee.
func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Name returns the employee's display name.
func (c CreateEmployeeCommand) Name() string {
	return c.name
}

// Role returns the resolved employee role.
func (c CreateEmployeeCommand) Role() employee.Role {
	return c.role
}

func (c *CreateEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateEmployeeCommand) setName(name string) error {
	if name == "" {
		return employee.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateEmployeeCommand) setRole(role string) error {
	resolved, err := employee.RoleFromString(role)
	if err != nil {
		return err
	}

	c.role = resolved
	return nil
}
