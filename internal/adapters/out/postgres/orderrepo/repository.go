package orderrepo

import (
	"context"
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Reads lock the order row (SELECT ... FOR UPDATE) so that concurrent
// mutations of the same order serialize on the surrounding transaction and
// the status aggregation never works from a stale task set.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its tasks, assignments and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, taskDTOs, assignmentDTOs, historyDTOs := fromDomain(aggregate)

	tx := r.db.WithContext(ctx)
	if err := tx.Create(&orderDTO).Error; err != nil {
		return err
	}
	if len(taskDTOs) > 0 {
		if err := tx.Create(&taskDTOs).Error; err != nil {
			return err
		}
	}
	if len(assignmentDTOs) > 0 {
		if err := tx.Create(&assignmentDTOs).Error; err != nil {
			return err
		}
	}
	if len(historyDTOs) > 0 {
		if err := tx.Create(&historyDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Tasks removed by reconciliation are
// hard-deleted together with their assignment rows; history rows already
// persisted are never touched, only new entries are appended.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, taskDTOs, assignmentDTOs, historyDTOs := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Model(&OrderDTO{}).
		Where("id = ?", orderDTO.ID).
		Select("customer_id", "vehicle_id", "lead_employee_id", "status", "created_at", "active").
		Updates(&orderDTO)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.syncTasks(tx, orderDTO.ID, taskDTOs, assignmentDTOs); err != nil {
		return err
	}
	if err := r.appendHistory(tx, orderDTO.ID, historyDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the full aggregate by id, locking the order row.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetByTaskID retrieves the aggregate owning the given service task.
func (r *GormOrderRepository) GetByTaskID(ctx context.Context, taskID kernel.UUID) (*order.Order, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var taskDTO ServiceTaskDTO
	err := r.db.WithContext(ctx).First(&taskDTO, "id = ?", taskID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", taskID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(taskDTO.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

func (r *GormOrderRepository) loadAggregate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	tx := r.db.WithContext(ctx)

	var taskDTOs []ServiceTaskDTO
	if err := tx.Order("id").Find(&taskDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	var assignmentDTOs []AssignmentDTO
	if len(taskDTOs) > 0 {
		taskIDs := make([]uuid.UUID, 0, len(taskDTOs))
		for _, taskDTO := range taskDTOs {
			taskIDs = append(taskIDs, taskDTO.ID)
		}
		if err := tx.Find(&assignmentDTOs, "order_service_id IN ?", taskIDs).Error; err != nil {
			return nil, err
		}
	}

	var historyDTOs []HistoryDTO
	if err := tx.Order("id").Find(&historyDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, taskDTOs, assignmentDTOs, historyDTOs)
}

func (r *GormOrderRepository) syncTasks(
	tx *gorm.DB,
	orderID uuid.UUID,
	taskDTOs []ServiceTaskDTO,
	assignmentDTOs []AssignmentDTO,
) error {
	currentIDs := make([]uuid.UUID, 0, len(taskDTOs))
	for _, taskDTO := range taskDTOs {
		currentIDs = append(currentIDs, taskDTO.ID)
	}

	// assignments are rewritten wholesale: wipe the rows of every task
	// stored for this order, then re-insert the current ones
	if err := tx.Where(
		"order_service_id IN (SELECT id FROM order_services WHERE order_id = ?)", orderID,
	).Delete(&AssignmentDTO{}).Error; err != nil {
		return err
	}

	removed := tx.Where("order_id = ?", orderID)
	if len(currentIDs) > 0 {
		removed = removed.Where("id NOT IN ?", currentIDs)
	}
	if err := removed.Delete(&ServiceTaskDTO{}).Error; err != nil {
		return err
	}

	if len(currentIDs) == 0 {
		return nil
	}

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&taskDTOs).Error; err != nil {
		return err
	}

	if len(assignmentDTOs) > 0 {
		if err := tx.Create(&assignmentDTOs).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormOrderRepository) appendHistory(tx *gorm.DB, orderID uuid.UUID, historyDTOs []HistoryDTO) error {
	var persisted int64
	if err := tx.Model(&HistoryDTO{}).Where("order_id = ?", orderID).Count(&persisted).Error; err != nil {
		return err
	}

	if int(persisted) >= len(historyDTOs) {
		return nil
	}

	newEntries := historyDTOs[persisted:]
	return tx.Create(&newEntries).Error
}
