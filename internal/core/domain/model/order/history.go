package order

import (
	"time"

	"autoservice/internal/core/domain/model/kernel"
)

// HistoryEntry is an append-only audit record of a status value applied to
// the order or to one of its tasks. Entries are never mutated or deduplicated:
// setting the same status twice produces two entries.
//
// The task reference is weak: when a task is removed by reconciliation its
// history entries survive for audit.
type HistoryEntry struct {
	taskID     *kernel.UUID
	status     string
	actorID    kernel.UUID
	recordedAt time.Time
}

// NewHistoryEntry creates a history entry. taskID is nil for overall-order
// status changes.
func NewHistoryEntry(taskID *kernel.UUID, status string, actorID kernel.UUID, recordedAt time.Time) HistoryEntry {
	return HistoryEntry{
		taskID:     taskID,
		status:     status,
		actorID:    actorID,
		recordedAt: recordedAt,
	}
}

// TaskID returns the referenced task id, or nil for an order-level entry.
func (h HistoryEntry) TaskID() *kernel.UUID {
	return h.taskID
}

// Status returns the recorded status string value.
func (h HistoryEntry) Status() string {
	return h.status
}

// ActorID returns the employee or admin who caused the change.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// RecordedAt returns when the change was recorded.
func (h HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}
