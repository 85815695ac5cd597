package ports

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
)

// CatalogService is the read model of one priced service definition.
type CatalogService struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Price
}

// ServiceCatalog looks up priced service definitions during order
// composition. A missing entry is reported as an ObjectNotFoundError; the
// composition manager treats that as non-fatal and prices the service at
// zero.
type ServiceCatalog interface {
	// GetService retrieves a service definition by id.
	GetService(ctx context.Context, id kernel.UUID) (CatalogService, error)
}
