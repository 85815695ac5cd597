// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat view models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrGetOrderViewQueryIsNotConstructed = errors.New(
	"GetOrderViewQuery must be created via NewGetOrderViewQuery constructor",
)

// GetOrderViewQuery retrieves the aggregated view of one order: the order
// row with its derived overall status, every service task with its price
// and progress, and the full status history.
//
// Example:
//
//	query, err := NewGetOrderViewQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := NewGetOrderViewQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order view: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", view.ID, view.StatusDisplayName)
type GetOrderViewQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderViewQuery creates a query for one order's aggregated view.
func NewGetOrderViewQuery(orderID kernel.UUID) (GetOrderViewQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderViewQuery{}, err
	}

	return GetOrderViewQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderViewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViewQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to load.
func (q GetOrderViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TaskView represents one service task in the aggregated order view.
type TaskView struct {
	ID         kernel.UUID
	ServiceID  kernel.UUID
	Name       string
	PriceCents int64
	StatusCode int
	Status     string
	Completed  bool
	AssigneeID *kernel.UUID
}

// HistoryEntryView represents one recorded status change. TaskID is nil
// for overall order status entries.
type HistoryEntryView struct {
	TaskID     *kernel.UUID
	Status     string
	ActorID    kernel.UUID
	RecordedAt time.Time
}

// GetOrderViewQueryResponse is the aggregated view of one order.
type GetOrderViewQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	VehicleID         kernel.UUID
	LeadEmployeeID    *kernel.UUID
	StatusCode        int
	Status            string
	StatusDisplayName string
	CreatedAt         time.Time
	Active            bool
	TotalCents        int64
	Tasks             []TaskView
	History           []HistoryEntryView
}
