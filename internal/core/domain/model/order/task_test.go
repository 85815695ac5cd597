package order_test

import (
	"testing"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceTask(t *testing.T) {
	t.Run("should create task in received state", func(t *testing.T) {
		price, err := kernel.NewPrice(9900)
		require.NoError(t, err)
		assignee := kernel.NewUUID()

		task, err := order.NewServiceTask(
			kernel.NewUUID(), kernel.NewUUID(), "tire rotation", price, &assignee,
		)

		require.NoError(t, err)
		require.NoError(t, task.Validate())
		assert.Equal(t, order.TaskReceived, task.Status())
		assert.False(t, task.Completed())
		assert.Equal(t, "tire rotation", task.Name())
		assert.Equal(t, int64(9900), task.Price().Cents())
		assert.True(t, task.IsAssignedTo(assignee))
	})

	t.Run("should allow unassigned task", func(t *testing.T) {
		task, err := order.NewServiceTask(
			kernel.NewUUID(), kernel.NewUUID(), "tire rotation", kernel.ZeroPrice(), nil,
		)

		require.NoError(t, err)
		assert.Nil(t, task.AssigneeID())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewServiceTask(zero, zero, "tire rotation", kernel.ZeroPrice(), nil)

		require.Error(t, err)
	})

	t.Run("should reject direct struct construction", func(t *testing.T) {
		var task order.ServiceTask
		require.ErrorIs(t, task.Validate(), order.ErrServiceTaskIsNotConstructed)
	})
}

func TestRestoreServiceTask(t *testing.T) {
	t.Run("should rehydrate task with stored status", func(t *testing.T) {
		task, err := order.RestoreServiceTask(
			kernel.NewUUID(), kernel.NewUUID(), "diagnostics",
			kernel.ZeroPrice(), order.TaskInProgress, true, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.TaskInProgress, task.Status())
		assert.True(t, task.Completed())
	})

	t.Run("should reject undefined status", func(t *testing.T) {
		_, err := order.RestoreServiceTask(
			kernel.NewUUID(), kernel.NewUUID(), "diagnostics",
			kernel.ZeroPrice(), order.TaskStatus(7), false, nil,
		)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}
