package order

import "fmt"

// TaskStatus represents the state of a single service task within an
// order. The numeric codes reuse 1..3 with task-level semantics and are
// part of the API contract.
type TaskStatus int

const (
	// TaskStatusUnknown is the invalid zero value.
	TaskStatusUnknown TaskStatus = iota

	// TaskReceived means the task has been registered but not picked up.
	TaskReceived

	// TaskInProgress means an employee has checked the task and is working
	// on it.
	TaskInProgress

	// TaskCompleted means the work was submitted as finished.
	TaskCompleted
)

func taskStatusStrings() map[TaskStatus]string {
	return map[TaskStatus]string{
		TaskReceived:   "pending",
		TaskInProgress: "in_progress",
		TaskCompleted:  "completed",
	}
}

// TaskStatusFromCode maps a raw numeric code to a TaskStatus.
// Returns ErrInvalidStatus for anything outside 1..3.
func TaskStatusFromCode(code int) (TaskStatus, error) {
	s := TaskStatus(code)
	if err := s.Validate(); err != nil {
		return TaskStatusUnknown, err
	}
	return s, nil
}

// Code returns the numeric representation for the API boundary.
func (s TaskStatus) Code() int {
	return int(s)
}

// String returns the value recorded in status history:
// pending, in_progress or completed.
func (s TaskStatus) String() string {
	if str, ok := taskStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate returns ErrInvalidStatus unless the status is one of the three
// defined task states.
func (s TaskStatus) Validate() error {
	if _, ok := taskStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a defined task status", ErrInvalidStatus, int(s))
	}
	return nil
}

// Checked reports whether the task counts as "checked" for aggregation.
// in_progress and completed both collapse into checked; only received is
// unchecked.
func (s TaskStatus) Checked() bool {
	return s == TaskInProgress || s == TaskCompleted
}

// Submitted reports whether the task was submitted as finished.
// A checked task is not necessarily submitted.
func (s TaskStatus) Submitted() bool {
	return s == TaskCompleted
}
