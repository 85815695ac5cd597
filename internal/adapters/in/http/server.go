// Package http exposes the shop's order operations over a small JSON API.
// Handlers translate between transport DTOs and application commands, and
// map the domain error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	createEmployeeHandler    commands.CreateEmployeeCommandHandler
	setTaskStatusHandler     commands.SetTaskStatusCommandHandler
	transitionOrderHandler   commands.TransitionOrderCommandHandler
	reconcileServicesHandler commands.ReconcileServicesCommandHandler

	getOrderViewHandler    queries.GetOrderViewQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createEmployeeHandler commands.CreateEmployeeCommandHandler,
	setTaskStatusHandler commands.SetTaskStatusCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	reconcileServicesHandler commands.ReconcileServicesCommandHandler,
	getOrderViewHandler queries.GetOrderViewQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createEmployeeHandler:    createEmployeeHandler,
		setTaskStatusHandler:     setTaskStatusHandler,
		transitionOrderHandler:   transitionOrderHandler,
		reconcileServicesHandler: reconcileServicesHandler,
		getOrderViewHandler:      getOrderViewHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/:order_id", s.GetOrderView)
	api.POST("/orders/:order_id/status", s.TransitionOrder)
	api.PUT("/orders/:order_id/services", s.ReconcileServices)
	api.POST("/tasks/:task_id/status", s.SetTaskStatus)
	api.POST("/employees", s.CreateEmployee)
}

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServiceRequestDTO names one requested catalog service.
type ServiceRequestDTO struct {
	ServiceID  string  `json:"service_id"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	OrderID        *string             `json:"order_id,omitempty"`
	CustomerID     string              `json:"customer_id"`
	VehicleID      string              `json:"vehicle_id"`
	LeadEmployeeID *string             `json:"lead_employee_id,omitempty"`
	ActorID        string              `json:"actor_id"`
	Services       []ServiceRequestDTO `json:"services,omitempty"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	if request.OrderID != nil {
		parsed, err := kernel.UUIDFromString(*request.OrderID)
		if err != nil {
			return badRequest(ctx, "order_id must be a valid uuid")
		}
		orderID = parsed
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "customer_id must be a valid uuid")
	}
	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicle_id must be a valid uuid")
	}
	leadEmployeeID, err := parseOptionalID(request.LeadEmployeeID)
	if err != nil {
		return badRequest(ctx, "lead_employee_id must be a valid uuid")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "actor_id must be a valid uuid")
	}
	serviceRequests, err := parseServiceRequests(request.Services)
	if err != nil {
		return badRequest(ctx, "services must reference valid uuids")
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, vehicleID, leadEmployeeID, actorID, serviceRequests,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// SetTaskStatusRequest is the body of POST /tasks/:task_id/status.
type SetTaskStatusRequest struct {
	StatusCode int    `json:"status_code"`
	ActorID    string `json:"actor_id"`
}

// SetTaskStatusResponse reports the task status applied and the overall
// order status derived from it.
type SetTaskStatusResponse struct {
	TaskStatusCode  int    `json:"task_status_code"`
	TaskStatus      string `json:"task_status"`
	OrderStatusCode int    `json:"order_status_code"`
	OrderStatus     string `json:"order_status"`
}

// SetTaskStatus handles POST /api/v1/tasks/:task_id/status.
func (s *Server) SetTaskStatus(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("task_id"))
	if err != nil {
		return badRequest(ctx, "task_id must be a valid uuid")
	}

	var request SetTaskStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "actor_id must be a valid uuid")
	}

	cmd, err := commands.NewSetTaskStatusCommand(taskID, request.StatusCode, actorID)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.setTaskStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SetTaskStatusResponse{
		TaskStatusCode:  result.TaskStatus.Code(),
		TaskStatus:      result.TaskStatus.String(),
		OrderStatusCode: result.OrderStatus.Code(),
		OrderStatus:     result.OrderStatus.String(),
	})
}

// TransitionOrderRequest is the body of POST /orders/:order_id/status.
type TransitionOrderRequest struct {
	StatusCode int    `json:"status_code"`
	ActorID    string `json:"actor_id"`
}

// TransitionOrder handles POST /api/v1/orders/:order_id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id must be a valid uuid")
	}

	var request TransitionOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "actor_id must be a valid uuid")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, request.StatusCode, actorID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReconcileServicesRequest is the body of PUT /orders/:order_id/services.
// An empty service list clears every task from the order.
type ReconcileServicesRequest struct {
	Services []ServiceRequestDTO `json:"services"`
	ActorID  string              `json:"actor_id"`
}

// ReconcileServicesResponse reports the overall status after recomposition.
type ReconcileServicesResponse struct {
	OrderStatusCode int    `json:"order_status_code"`
	OrderStatus     string `json:"order_status"`
}

// ReconcileServices handles PUT /api/v1/orders/:order_id/services.
func (s *Server) ReconcileServices(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id must be a valid uuid")
	}

	var request ReconcileServicesRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "actor_id must be a valid uuid")
	}
	serviceRequests, err := parseServiceRequests(request.Services)
	if err != nil {
		return badRequest(ctx, "services must reference valid uuids")
	}

	cmd, err := commands.NewReconcileServicesCommand(orderID, serviceRequests, actorID)
	if err != nil {
		return mapError(ctx, err)
	}

	status, err := s.reconcileServicesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReconcileServicesResponse{
		OrderStatusCode: status.Code(),
		OrderStatus:     status.String(),
	})
}

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var request CreateEmployeeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(employeeID, request.Name, request.Role)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": employeeID.String()})
}

// TaskViewDTO is one service task in the aggregated order view.
type TaskViewDTO struct {
	ID         string  `json:"id"`
	ServiceID  string  `json:"service_id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	StatusCode int     `json:"status_code"`
	Status     string  `json:"status"`
	Completed  bool    `json:"completed"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

// HistoryEntryDTO is one recorded status change.
type HistoryEntryDTO struct {
	TaskID     *string   `json:"task_id,omitempty"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OrderViewResponse is the aggregated view of one order.
type OrderViewResponse struct {
	ID                string            `json:"id"`
	CustomerID        string            `json:"customer_id"`
	VehicleID         string            `json:"vehicle_id"`
	LeadEmployeeID    *string           `json:"lead_employee_id,omitempty"`
	StatusCode        int               `json:"status_code"`
	Status            string            `json:"status"`
	StatusDisplayName string            `json:"status_display_name"`
	CreatedAt         time.Time         `json:"created_at"`
	Active            bool              `json:"active"`
	TotalCents        int64             `json:"total_cents"`
	Tasks             []TaskViewDTO     `json:"tasks"`
	History           []HistoryEntryDTO `json:"history"`
}

// GetOrderView handles GET /api/v1/orders/:order_id.
func (s *Server) GetOrderView(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "order_id must be a valid uuid")
	}

	query, err := queries.NewGetOrderViewQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	view, err := s.getOrderViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	tasks := make([]TaskViewDTO, 0, len(view.Tasks))
	for _, task := range view.Tasks {
		tasks = append(tasks, TaskViewDTO{
			ID:         task.ID.String(),
			ServiceID:  task.ServiceID.String(),
			Name:       task.Name,
			PriceCents: task.PriceCents,
			StatusCode: task.StatusCode,
			Status:     task.Status,
			Completed:  task.Completed,
			AssigneeID: formatOptionalID(task.AssigneeID),
		})
	}

	history := make([]HistoryEntryDTO, 0, len(view.History))
	for _, entry := range view.History {
		history = append(history, HistoryEntryDTO{
			TaskID:     formatOptionalID(entry.TaskID),
			Status:     entry.Status,
			ActorID:    entry.ActorID.String(),
			RecordedAt: entry.RecordedAt,
		})
	}

	return ctx.JSON(http.StatusOK, OrderViewResponse{
		ID:                view.ID.String(),
		CustomerID:        view.CustomerID.String(),
		VehicleID:         view.VehicleID.String(),
		LeadEmployeeID:    formatOptionalID(view.LeadEmployeeID),
		StatusCode:        view.StatusCode,
		Status:            view.Status,
		StatusDisplayName: view.StatusDisplayName,
		CreatedAt:         view.CreatedAt,
		Active:            view.Active,
		TotalCents:        view.TotalCents,
		Tasks:             tasks,
		History:           history,
	})
}

// ActiveOrderDTO is one open order in the list response.
type ActiveOrderDTO struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	VehicleID  string    `json:"vehicle_id"`
	StatusCode int       `json:"status_code"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ActiveOrderDTO, 0, len(orders))
	for _, o := range orders {
		response = append(response, ActiveOrderDTO{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			VehicleID:  o.VehicleID.String(),
			StatusCode: o.StatusCode,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseOptionalID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatOptionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	formatted := id.String()
	return &formatted
}

func parseServiceRequests(dtos []ServiceRequestDTO) ([]commands.ServiceRequest, error) {
	requests := make([]commands.ServiceRequest, 0, len(dtos))
	for _, dto := range dtos {
		serviceID, err := kernel.UUIDFromString(dto.ServiceID)
		if err != nil {
			return nil, err
		}
		employeeID, err := parseOptionalID(dto.EmployeeID)
		if err != nil {
			return nil, err
		}
		requests = append(requests, commands.ServiceRequest{
			ServiceID:  serviceID,
			EmployeeID: employeeID,
		})
	}
	return requests, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates the domain error taxonomy onto HTTP status codes:
// validation and lifecycle violations are 400, missing objects are 404,
// permission failures are 403, everything else is a 500.
func mapError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, order.ErrTaskNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrActorNotPermitted):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrIncompleteServices),
		errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, guard.ErrNotConstructed):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
