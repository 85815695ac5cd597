package queries

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrGetReadyForPickupOrdersQueryIsNotConstructed = errors.New(
	"GetReadyForPickupOrdersQuery must be created via NewGetReadyForPickupOrdersQuery constructor",
)

// GetReadyForPickupOrdersQuery retrieves orders waiting for their customer
// to pick the vehicle up, together with how long each has been waiting.
// Used by the pickup reminder job.
type GetReadyForPickupOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyForPickupOrdersQuery creates a query to retrieve waiting orders.
// This is a parameterless query.
func NewGetReadyForPickupOrdersQuery() GetReadyForPickupOrdersQuery {
	return GetReadyForPickupOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyForPickupOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyForPickupOrdersQueryIsNotConstructed)
}

// GetReadyForPickupOrdersQueryResponse represents one order waiting for
// pickup. ReadySince is the time the order entered ready_for_pickup.
type GetReadyForPickupOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	ReadySince time.Time
}
