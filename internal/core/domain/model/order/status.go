package order

import "fmt"

// Status represents the overall lifecycle state of a repair order.
// The numeric codes are part of the persistence and API contract and
// must not be renumbered.
//
// Lifecycle:
//
//	pending ──> in_progress ──> completed ──> ready_for_pickup ──> done
//	   ^                                                            │
//	   └───────────────────── cancelled <───────────────────────────┘
//
// pending, in_progress and completed move forward through task
// aggregation; ready_for_pickup and done are reachable only through
// explicit transitions. cancelled re-opens to pending only.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending is the initial state; displayed as "Received".
	StatusPending

	// StatusInProgress indicates at least one task has been picked up.
	StatusInProgress

	// StatusCompleted indicates every task has been submitted.
	StatusCompleted

	// StatusReadyForPickup indicates the vehicle awaits the customer.
	StatusReadyForPickup

	// StatusDone indicates the order was closed out; tasks are locked.
	StatusDone

	// StatusCancelled indicates the order was cancelled; tasks are locked.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:        "pending",
		StatusInProgress:     "in_progress",
		StatusCompleted:      "completed",
		StatusReadyForPickup: "ready_for_pickup",
		StatusDone:           "done",
		StatusCancelled:      "cancelled",
	}
}

func statusDisplayNames() map[Status]string {
	return map[Status]string{
		StatusPending:        "Received",
		StatusInProgress:     "In Progress",
		StatusCompleted:      "Completed",
		StatusReadyForPickup: "Ready for Pickup",
		StatusDone:           "Done",
		StatusCancelled:      "Cancelled",
	}
}

// legalTransitions is the explicit transition table evaluated against the
// current status. Aggregator-driven changes do not pass through this table;
// they are gated by IsSticky instead.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusCancelled},
		StatusInProgress:     {StatusCancelled},
		StatusCompleted:      {StatusReadyForPickup, StatusDone, StatusCancelled},
		StatusReadyForPickup: {StatusDone, StatusCancelled},
		StatusDone:           {StatusCancelled},
		StatusCancelled:      {StatusPending},
	}
}

// StatusFromCode maps a raw numeric code from the API or database to a
// Status. Returns ErrInvalidStatus for anything outside 1..6.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	return s, nil
}

// Code returns the numeric representation for the persistence and API boundary.
func (s Status) Code() int {
	return int(s)
}

// String returns the persisted string value, e.g. "ready_for_pickup".
// Unknown values yield "unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DisplayName returns the human-facing label, e.g. "Received" for pending.
func (s Status) DisplayName() string {
	if str, ok := statusDisplayNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate returns ErrInvalidStatus unless the status is one of the six
// defined states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a defined order status", ErrInvalidStatus, int(s))
	}
	return nil
}

// IsSticky reports whether the status must never be overridden by task
// aggregation. ready_for_pickup and done are reachable only through
// explicit transitions, so task churn after pickup-readiness must not
// silently regress them; cancelled only leaves through an explicit re-open.
func (s Status) IsSticky() bool {
	return s == StatusReadyForPickup || s == StatusDone || s == StatusCancelled
}

// IsLocked reports whether task mutation is forbidden in this state.
// Done and cancelled orders accept only explicit lifecycle transitions.
func (s Status) IsLocked() bool {
	return s == StatusDone || s == StatusCancelled
}

// RequiresSubmittedTasks reports whether a transition into this status
// demands that every service task has been submitted.
func (s Status) RequiresSubmittedTasks() bool {
	return s == StatusCompleted || s == StatusReadyForPickup || s == StatusDone
}

// CanTransitionTo reports whether the explicit transition table permits
// moving from the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range legalTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from the current status to target and
// returns the new status. Returns ErrInvalidStatus for an undefined target
// and ErrInvalidTransition for a defined but illegal edge.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
