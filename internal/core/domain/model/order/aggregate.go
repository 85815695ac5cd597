package order

// AggregateStatus derives an order's overall status from its task set.
// It is a pure function; the current status is an input because some
// overall states are sticky and cannot be derived from tasks alone.
//
// Rules, in order:
//   - Sticky guard: if current is ready_for_pickup, done or cancelled the
//     current status is returned unchanged. Those states are entered only
//     through explicit lifecycle transitions and task churn must never
//     silently regress them.
//   - Zero tasks aggregate to pending.
//   - All tasks submitted aggregate to completed.
//   - Any checked or submitted task aggregates to in_progress.
//   - Otherwise pending.
func AggregateStatus(current Status, tasks []*ServiceTask) Status {
	if current.IsSticky() {
		return current
	}

	total := len(tasks)
	if total == 0 {
		return StatusPending
	}

	checked, submitted := 0, 0
	for _, t := range tasks {
		if t.Status().Checked() {
			checked++
		}
		if t.Status().Submitted() {
			submitted++
		}
	}

	switch {
	case submitted == total:
		return StatusCompleted
	case checked > 0 || submitted > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}
