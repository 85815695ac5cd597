package commands

import (
	"context"
	"errors"
	"log/slog"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"
)

// ServiceRequest names one catalog service requested for an order,
// optionally with the employee who should work on it.
type ServiceRequest struct {
	ServiceID  kernel.UUID
	EmployeeID *kernel.UUID
}

func validateServiceRequests(requests []ServiceRequest) error {
	for _, request := range requests {
		if err := request.ServiceID.Validate(); err != nil {
			return err
		}
		if request.EmployeeID != nil {
			if err := request.EmployeeID.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveServiceSpecs prices each requested service against the catalog.
// A service missing from the catalog is not an error: the task is priced
// at zero so the order still tracks the work item.
func resolveServiceSpecs(
	ctx context.Context,
	catalog ports.ServiceCatalog,
	logger *slog.Logger,
	requests []ServiceRequest,
) ([]order.ServiceSpec, error) {
	specs := make([]order.ServiceSpec, 0, len(requests))
	for _, request := range requests {
		name := ""
		price := kernel.ZeroPrice()

		service, err := catalog.GetService(ctx, request.ServiceID)
		switch {
		case err == nil:
			name = service.Name
			price = service.Price
		case errors.Is(err, errs.ErrObjectNotFound):
			logger.WarnContext(ctx, "service missing from catalog, pricing at zero",
				slog.String("service_id", request.ServiceID.String()),
			)
		default:
			return nil, err
		}

		spec, err := order.NewServiceSpec(request.ServiceID, name, price, request.EmployeeID)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}
