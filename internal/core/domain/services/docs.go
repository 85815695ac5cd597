// Package services provides domain services that coordinate rules across
// multiple aggregates.
//
// The package includes:
//   - AccessPolicy: capability checks deciding which actors may drive
//     lifecycle transitions, order recomposition, and task-status changes.
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
