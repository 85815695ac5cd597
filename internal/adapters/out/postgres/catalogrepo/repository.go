package catalogrepo

import (
	"context"
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceCatalog implements ServiceCatalog using GORM.
type GormServiceCatalog struct {
	db *gorm.DB
}

// NewGormServiceCatalog creates a new GORM service catalog reader.
func NewGormServiceCatalog(db *gorm.DB) *GormServiceCatalog {
	return &GormServiceCatalog{db: db}
}

// GetService retrieves a priced service definition by ID.
func (r *GormServiceCatalog) GetService(ctx context.Context, id kernel.UUID) (ports.CatalogService, error) {
	if err := id.Validate(); err != nil {
		return ports.CatalogService{}, err
	}

	var dto CatalogServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogService{}, errs.NewObjectNotFoundError("service", id.String())
		}
		return ports.CatalogService{}, err
	}

	return toView(dto)
}

// AddService inserts a priced service definition. Used when seeding the
// catalog at startup.
func (r *GormServiceCatalog) AddService(ctx context.Context, service ports.CatalogService) error {
	dto := CatalogServiceDTO{
		ID:         service.ID.Bytes(),
		Name:       service.Name,
		PriceCents: service.Price.Cents(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
