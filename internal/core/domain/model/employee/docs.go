// Package employee provides the shop-employee reference aggregate. The
// core consumes it for actor capability checks: an actor's role decides
// whether a lifecycle transition or a task-status change is permitted.
// Credential handling is not modelled here; identity arrives from the
// outside as an already-authenticated employee id.
package employee
