package order

import "errors"

// Business-rule sentinels for the order lifecycle. Callers classify
// failures with errors.Is; the HTTP boundary maps them to status codes.
var (
	// ErrInvalidStatus is returned for a status code outside the defined enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrOrderLocked is returned when a task mutation or reconciliation is
	// attempted on a done or cancelled order.
	ErrOrderLocked = errors.New("order is locked")

	// ErrInvalidTransition is returned for a lifecycle edge the state
	// machine does not permit.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrIncompleteServices is returned when a forward transition is
	// requested while not every service task has been submitted.
	ErrIncompleteServices = errors.New("not all services are completed")

	// ErrTaskNotFound is returned when a task id does not resolve to a task
	// of the order.
	ErrTaskNotFound = errors.New("service task not found")
)
