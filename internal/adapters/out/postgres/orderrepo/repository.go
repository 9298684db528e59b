package orderrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
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

// Add saves a new order to the database, child rows included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a transition with a compare-and-swap on the version column.
// The row is only written when the stored version still matches the version
// the aggregate was loaded at; the write stores version+1. Zero affected rows
// means another writer got there first (or the order vanished), and the whole
// transaction must roll back.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":                       dto.Status,
			"proposed_item_total_cost":     dto.ProposedItemTotalCost,
			"proposed_total_cost":          dto.ProposedTotalCost,
			"final_agreed_item_total_cost": dto.FinalAgreedItemTotalCost,
			"final_agreed_total_cost":      dto.FinalAgreedTotalCost,
			"vendor_overall_note":          dto.VendorOverallNote,
			"vendor_rejection_reason":      dto.VendorRejectionReason,
			"user_rejection_reason":        dto.UserRejectionReason,
			"updated_at":                   dto.UpdatedAt,
			"version":                      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	// History is append-only and confirmed items are written once; existing
	// rows are left untouched.
	if len(dto.ConfirmedItems) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.ConfirmedItems).Error; err != nil {
			return err
		}
	}
	if len(dto.StatusHistory) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.StatusHistory).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate tells a stale version apart from a missing order.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewConcurrencyConflictError("order", id.String())
}

// Get retrieves an order by ID, fully rehydrated with items and history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("RequestedItems", sortBySeq).
		Preload("ConfirmedItems", sortBySeq).
		Preload("StatusHistory", sortBySeq).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func sortBySeq(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
