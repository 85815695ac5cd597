package commands_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateEmployeeCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(id, "Grace", "admin")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.EmployeeID())
	assert.Equal(t, "Grace", cmd.Name())
	assert.Equal(t, employee.RoleAdmin, cmd.Role())
}

func TestNewCreateEmployeeCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateEmployeeCommand(kernel.NewUUID(), "", "employee")
	require.Error(t, err)
}

func TestNewCreateEmployeeCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewCreateEmployeeCommand(kernel.NewUUID(), "Grace", "manager")
	require.Error(t, err)
}

func TestCreateEmployeeCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateEmployeeCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateEmployeeCommandIsNotConstructed)
}
