package employee

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating an employee without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrEmployeeIsNotConstructed is returned when using an Employee that was
	// not created via NewEmployee or RestoreEmployee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee")
)

// Employee is a reference aggregate carrying the identity and role the
// core needs for capability checks.
type Employee struct {
	id   kernel.UUID
	name string
	role Role

	guard guard.ConstructorGuard
}

// NewEmployee creates a validated employee.
func NewEmployee(id kernel.UUID, name string, role Role) (*Employee, error) {
	e := &Employee{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEmployee rehydrates an employee from persistence.
func RestoreEmployee(id kernel.UUID, name string, role Role) (*Employee, error) {
	return NewEmployee(id, name, role)
}

// Validate ensures the employee was built through a constructor.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the employee identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Name returns the employee's display name.
func (e *Employee) Name() string {
	return e.name
}

// Role returns the employee's capability role.
func (e *Employee) Role() Role {
	return e.role
}

// IsAdmin reports whether the employee carries admin capabilities.
func (e *Employee) IsAdmin() bool {
	return e.role.IsAdmin()
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}
