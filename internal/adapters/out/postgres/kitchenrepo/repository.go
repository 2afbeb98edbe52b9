package kitchenrepo

import (
	"context"
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/kitchen"
	"ghostkitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKitchenRepository implements KitchenRepository using GORM.
type GormKitchenRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormKitchenRepository creates a new GORM kitchen repository.
func NewGormKitchenRepository(db *gorm.DB, tracker aggregateTracker) *GormKitchenRepository {
	return &GormKitchenRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new kitchen to the database.
func (r *GormKitchenRepository) Add(ctx context.Context, aggregate *kitchen.Kitchen) error {
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

// Update saves an existing kitchen to the database.
func (r *GormKitchenRepository) Update(ctx context.Context, aggregate *kitchen.Kitchen) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&KitchenDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "location", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a kitchen by ID.
func (r *GormKitchenRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Kitchen, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto KitchenDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kitchen", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
