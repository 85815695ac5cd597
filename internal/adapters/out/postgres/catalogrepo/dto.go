// Package catalogrepo reads the priced service catalog used during order
// composition. The catalog is reference data: this adapter only reads it.
package catalogrepo

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/ports"

	"github.com/google/uuid"
)

// CatalogServiceDTO represents one priced service definition row.
type CatalogServiceDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	PriceCents int64
}

// TableName maps catalog rows to the "common_services" table.
func (CatalogServiceDTO) TableName() string {
	return "common_services"
}

// toView converts a catalog row to the read model used by composition.
func toView(dto CatalogServiceDTO) (ports.CatalogService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogService{}, err
	}

	price, err := kernel.NewPrice(dto.PriceCents)
	if err != nil {
		return ports.CatalogService{}, err
	}

	return ports.CatalogService{
		ID:    id,
		Name:  dto.Name,
		Price: price,
	}, nil
}
