// Package order implements the repair-order aggregate: the order lifecycle
// state machine, the per-service task ledger, the append-only status
// history, and the pure status-aggregation function that derives an order's
// overall status from its task set.
//
// The aggregate enforces these invariants:
//   - The overall status is always one of the six defined states.
//   - Once an order is done or cancelled, its tasks can no longer be
//     mutated; only the explicit lifecycle transitions remain available.
//   - Every overall-status change and every task-status change appends
//     exactly one history entry; history is never rewritten.
//   - ready_for_pickup and done are reachable only through explicit
//     lifecycle transitions, never through task recomputation.
//
// Status codes are fixed at the persistence and API boundary:
// 1=pending, 2=in_progress, 3=completed, 4=ready_for_pickup, 5=done,
// 6=cancelled. Task-level codes reuse 1..3 (received, in progress,
// completed/submitted).
package order
