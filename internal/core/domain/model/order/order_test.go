package order_test

import (
	"testing"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func newPendingOrder(t *testing.T, taskCount int) (*order.Order, []kernel.UUID) {
	t.Helper()

	actor := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, actor, testTime,
	)
	require.NoError(t, err)

	taskIDs := make([]kernel.UUID, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		price, priceErr := kernel.NewPrice(5000)
		require.NoError(t, priceErr)

		task, taskErr := order.NewServiceTask(
			kernel.NewUUID(), kernel.NewUUID(), "brake inspection", price, nil,
		)
		require.NoError(t, taskErr)
		require.NoError(t, o.AddTask(task, actor, testTime))
		taskIDs = append(taskIDs, task.ID())
	}

	return o, taskIDs
}

func restoreOrderWithStatus(
	t *testing.T, status order.Status, tasks ...*order.ServiceTask,
) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		status, testTime, true, tasks, nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with opening history entry", func(t *testing.T) {
		actor := kernel.NewUUID()
		lead := kernel.NewUUID()

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &lead, actor, testTime,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.IsActive())
		assert.Empty(t, o.Tasks())
		require.NotNil(t, o.LeadEmployeeID())
		assert.True(t, o.LeadEmployeeID().IsEqual(lead))

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, "pending", history[0].Status())
		assert.Nil(t, history[0].TaskID())
		assert.True(t, history[0].ActorID().IsEqual(actor))
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(zero, zero, zero, nil, zero, testTime)

		require.Error(t, err)
	})

	t.Run("should reject direct struct construction", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetTaskStatus(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should move order to in_progress when a task is picked up", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 2)
		require.Equal(t, order.StatusPending, o.Status())

		taskStatus, overall, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.TaskInProgress, taskStatus)
		assert.Equal(t, order.StatusInProgress, overall)
	})

	t.Run("should stay in_progress until every task is submitted", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 2)
		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)

		_, overall, err := o.SetTaskStatus(taskIDs[1], order.TaskCompleted, actor, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, overall)
	})

	t.Run("should aggregate to completed when the last task is submitted", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 2)
		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		_, _, err = o.SetTaskStatus(taskIDs[1], order.TaskCompleted, actor, testTime)
		require.NoError(t, err)

		_, overall, err := o.SetTaskStatus(taskIDs[0], order.TaskCompleted, actor, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, overall)
	})

	t.Run("should sync the checked flag with the status", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 1)

		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		task, err := o.TaskByID(taskIDs[0])
		require.NoError(t, err)
		assert.True(t, task.Completed())

		_, _, err = o.SetTaskStatus(taskIDs[0], order.TaskReceived, actor, testTime)
		require.NoError(t, err)
		assert.False(t, task.Completed())
	})

	t.Run("should append one task history entry per call even when repeated", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 1)
		before := len(o.History())

		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		// task entry + order aggregation entry
		assert.Len(t, o.History(), before+2)

		_, _, err = o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		// repeated status: one more task entry, no order change
		assert.Len(t, o.History(), before+3)
	})

	t.Run("should fail with ErrInvalidStatus for undefined status", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 1)

		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskStatus(9), actor, testTime)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("should fail with ErrTaskNotFound for foreign task id", func(t *testing.T) {
		o, _ := newPendingOrder(t, 1)

		_, _, err := o.SetTaskStatus(kernel.NewUUID(), order.TaskInProgress, actor, testTime)

		require.ErrorIs(t, err, order.ErrTaskNotFound)
	})

	t.Run("should fail with ErrOrderLocked on done order", func(t *testing.T) {
		task := taskWithStatus(t, order.TaskCompleted)
		o := restoreOrderWithStatus(t, order.StatusCompleted, task)
		require.NoError(t, o.TransitionTo(order.StatusDone, actor, testTime))

		_, _, err := o.SetTaskStatus(task.ID(), order.TaskReceived, actor, testTime)

		require.ErrorIs(t, err, order.ErrOrderLocked)
	})

	t.Run("should fail with ErrOrderLocked on cancelled order", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 1)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, actor, testTime))

		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)

		require.ErrorIs(t, err, order.ErrOrderLocked)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should cancel a pending order", func(t *testing.T) {
		o, _ := newPendingOrder(t, 1)

		require.NoError(t, o.TransitionTo(order.StatusCancelled, actor, testTime))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should reopen a cancelled order to pending only", func(t *testing.T) {
		o, _ := newPendingOrder(t, 1)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, actor, testTime))

		err := o.TransitionTo(order.StatusInProgress, actor, testTime)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		require.NoError(t, o.TransitionTo(order.StatusPending, actor, testTime))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject ready_for_pickup directly from pending", func(t *testing.T) {
		o, _ := newPendingOrder(t, 1)

		err := o.TransitionTo(order.StatusReadyForPickup, actor, testTime)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reach ready_for_pickup and done once all tasks are submitted", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 2)
		for _, id := range taskIDs {
			_, _, err := o.SetTaskStatus(id, order.TaskCompleted, actor, testTime)
			require.NoError(t, err)
		}
		require.Equal(t, order.StatusCompleted, o.Status())

		require.NoError(t, o.TransitionTo(order.StatusReadyForPickup, actor, testTime))
		require.NoError(t, o.TransitionTo(order.StatusDone, actor, testTime))
		assert.Equal(t, order.StatusDone, o.Status())
	})

	t.Run("should fail with ErrIncompleteServices when a task is not submitted", func(t *testing.T) {
		o := restoreOrderWithStatus(t, order.StatusCompleted, taskWithStatus(t, order.TaskInProgress))

		err := o.TransitionTo(order.StatusReadyForPickup, actor, testTime)

		require.ErrorIs(t, err, order.ErrIncompleteServices)
	})

	t.Run("should fail with ErrIncompleteServices for zero-task order", func(t *testing.T) {
		o := restoreOrderWithStatus(t, order.StatusCompleted)

		err := o.TransitionTo(order.StatusDone, actor, testTime)

		require.ErrorIs(t, err, order.ErrIncompleteServices)
	})

	t.Run("should allow cancelling a done order", func(t *testing.T) {
		o := restoreOrderWithStatus(t, order.StatusDone, taskWithStatus(t, order.TaskCompleted))

		require.NoError(t, o.TransitionTo(order.StatusCancelled, actor, testTime))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should append a history entry with the actor on success", func(t *testing.T) {
		o, _ := newPendingOrder(t, 1)
		before := len(o.History())

		require.NoError(t, o.TransitionTo(order.StatusCancelled, actor, testTime))

		history := o.History()
		require.Len(t, history, before+1)
		last := history[len(history)-1]
		assert.Equal(t, "cancelled", last.Status())
		assert.Nil(t, last.TaskID())
		assert.True(t, last.ActorID().IsEqual(actor))
	})
}

func TestOrder_ReconcileServices(t *testing.T) {
	actor := kernel.NewUUID()

	spec := func(t *testing.T, serviceID kernel.UUID, assignee *kernel.UUID) order.ServiceSpec {
		t.Helper()
		price, err := kernel.NewPrice(12000)
		require.NoError(t, err)
		s, err := order.NewServiceSpec(serviceID, "wheel alignment", price, assignee)
		require.NoError(t, err)
		return s
	}

	serviceIDs := func(o *order.Order) map[kernel.UUID]bool {
		ids := map[kernel.UUID]bool{}
		for _, task := range o.Tasks() {
			ids[task.ServiceID()] = true
		}
		return ids
	}

	t.Run("should create tasks for added services", func(t *testing.T) {
		o, _ := newPendingOrder(t, 0)
		svc1, svc2 := kernel.NewUUID(), kernel.NewUUID()

		err := o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc1, nil), spec(t, svc2, nil)}, actor, testTime,
		)

		require.NoError(t, err)
		require.Len(t, o.Tasks(), 2)
		assert.Equal(t, order.StatusPending, o.Status())
		for _, task := range o.Tasks() {
			assert.Equal(t, order.TaskReceived, task.Status())
		}
	})

	t.Run("should hard-delete tasks for removed services and keep history", func(t *testing.T) {
		o, _ := newPendingOrder(t, 0)
		svc1, svc2 := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc1, nil), spec(t, svc2, nil)}, actor, testTime,
		))
		task1, err := o.TaskByID(o.Tasks()[0].ID())
		require.NoError(t, err)
		_, _, err = o.SetTaskStatus(task1.ID(), order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		historyBefore := len(o.History())

		require.NoError(t, o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc2, nil)}, actor, testTime,
		))

		require.Len(t, o.Tasks(), 1)
		assert.True(t, o.Tasks()[0].ServiceID().IsEqual(svc2))
		// history of the removed task survives the delete
		assert.GreaterOrEqual(t, len(o.History()), historyBefore)
	})

	t.Run("should update assignment in place for kept services", func(t *testing.T) {
		o, _ := newPendingOrder(t, 0)
		svc := kernel.NewUUID()
		firstEmployee := kernel.NewUUID()
		require.NoError(t, o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc, &firstEmployee)}, actor, testTime,
		))
		taskID := o.Tasks()[0].ID()

		secondEmployee := kernel.NewUUID()
		require.NoError(t, o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc, &secondEmployee)}, actor, testTime,
		))

		task, err := o.TaskByID(taskID)
		require.NoError(t, err)
		assert.True(t, task.IsAssignedTo(secondEmployee))

		// clearing the employee removes the assignment
		require.NoError(t, o.ReconcileServices(
			[]order.ServiceSpec{spec(t, svc, nil)}, actor, testTime,
		))
		assert.Nil(t, task.AssigneeID())
	})

	t.Run("should regress a working order to pending when emptied", func(t *testing.T) {
		o, taskIDs := newPendingOrder(t, 1)
		_, _, err := o.SetTaskStatus(taskIDs[0], order.TaskInProgress, actor, testTime)
		require.NoError(t, err)
		require.Equal(t, order.StatusInProgress, o.Status())

		require.NoError(t, o.ReconcileServices(nil, actor, testTime))

		assert.Empty(t, o.Tasks())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should never regress a ready_for_pickup order", func(t *testing.T) {
		o := restoreOrderWithStatus(t, order.StatusReadyForPickup, taskWithStatus(t, order.TaskCompleted))

		require.NoError(t, o.ReconcileServices(nil, actor, testTime))

		assert.Equal(t, order.StatusReadyForPickup, o.Status())
	})

	t.Run("should fail with ErrOrderLocked on done order", func(t *testing.T) {
		o := restoreOrderWithStatus(t, order.StatusDone, taskWithStatus(t, order.TaskCompleted))

		err := o.ReconcileServices(nil, actor, testTime)

		require.ErrorIs(t, err, order.ErrOrderLocked)
	})

	t.Run("should restore the same service set after an empty round trip", func(t *testing.T) {
		o, _ := newPendingOrder(t, 0)
		svc1, svc2 := kernel.NewUUID(), kernel.NewUUID()
		original := []order.ServiceSpec{spec(t, svc1, nil), spec(t, svc2, nil)}
		require.NoError(t, o.ReconcileServices(original, actor, testTime))
		want := serviceIDs(o)

		require.NoError(t, o.ReconcileServices(nil, actor, testTime))
		require.Empty(t, o.Tasks())
		require.NoError(t, o.ReconcileServices(original, actor, testTime))

		assert.Equal(t, want, serviceIDs(o))
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum task prices", func(t *testing.T) {
		o, _ := newPendingOrder(t, 3)

		assert.Equal(t, int64(15000), o.Total().Cents())
	})
}

func TestOrder_Deactivate(t *testing.T) {
	t.Run("should clear the active flag", func(t *testing.T) {
		o, _ := newPendingOrder(t, 0)

		o.Deactivate()

		assert.False(t, o.IsActive())
	})
}
