package employee_test

import (
	"testing"

	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("should create valid employee", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := employee.NewEmployee(id, "Jordan Pavlov", employee.RoleEmployee)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, "Jordan Pavlov", e.Name())
		assert.False(t, e.IsAdmin())
	})

	t.Run("should recognize admin role", func(t *testing.T) {
		e, err := employee.NewEmployee(kernel.NewUUID(), "Sam Keller", employee.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, e.IsAdmin())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := employee.NewEmployee(kernel.NewUUID(), "", employee.RoleEmployee)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with undefined role", func(t *testing.T) {
		_, err := employee.NewEmployee(kernel.NewUUID(), "Sam Keller", employee.Role("owner"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject direct struct construction", func(t *testing.T) {
		var e employee.Employee
		require.ErrorIs(t, e.Validate(), employee.ErrEmployeeIsNotConstructed)
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse defined roles", func(t *testing.T) {
		r, err := employee.RoleFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, employee.RoleAdmin, r)

		r, err = employee.RoleFromString("employee")
		require.NoError(t, err)
		assert.Equal(t, employee.RoleEmployee, r)
	})

	t.Run("should reject undefined role", func(t *testing.T) {
		_, err := employee.RoleFromString("manager")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
