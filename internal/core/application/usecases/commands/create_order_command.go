package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new repair order
// for a customer's vehicle, optionally composed with an initial service set.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, vehicleID, nil, adminID, services)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	vehicleID      kernel.UUID
	leadEmployeeID *kernel.UUID
	actorID        kernel.UUID
	services       []ServiceRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new repair order.
// Validates all identifiers; the service list may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	leadEmployeeID *kernel.UUID,
	actorID kernel.UUID,
	services []ServiceRequest,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setVehicleID(vehicleID),
		orderCommand.setLeadEmployeeID(leadEmployeeID),
		orderCommand.setActorID(actorID),
		orderCommand.setServices(services),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the serviced vehicle's identifier.
func (c CreateOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// LeadEmployeeID returns the employee responsible for the order, or nil.
func (c CreateOrderCommand) LeadEmployeeID() *kernel.UUID {
	return c.leadEmployeeID
}

// ActorID returns the employee performing the operation.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Services returns the initial service set requested for the order.
func (c CreateOrderCommand) Services() []ServiceRequest {
	return c.services
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateOrderCommand) setLeadEmployeeID(leadEmployeeID *kernel.UUID) error {
	if leadEmployeeID != nil {
		if err := leadEmployeeID.Validate(); err != nil {
			return err
		}
	}

	c.leadEmployeeID = leadEmployeeID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setServices(services []ServiceRequest) error {
	if err := validateServiceRequests(services); err != nil {
		return err
	}

	c.services = services
	return nil
}
