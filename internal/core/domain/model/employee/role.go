package employee

import (
	"fmt"

	"autoservice/internal/pkg/errs"
)

// Role is the coarse capability level of an employee.
type Role string

const (
	// RoleEmployee may work on tasks assigned to them.
	RoleEmployee Role = "employee"

	// RoleAdmin may additionally drive order lifecycle transitions and
	// recompose orders.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a stored role value.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// String returns the persisted role value.
func (r Role) String() string {
	return string(r)
}

// Validate rejects anything but the two defined roles.
func (r Role) Validate() error {
	if r != RoleEmployee && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a defined role", string(r)))
	}
	return nil
}

// IsAdmin reports whether the role carries admin capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
