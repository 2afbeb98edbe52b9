package cuisinerepo

import (
	"context"
	"errors"

	"ghostkitchen/internal/core/domain/model/cuisine"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCuisineRepository implements CuisineRepository using GORM.
type GormCuisineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCuisineRepository creates a new GORM cuisine repository.
func NewGormCuisineRepository(db *gorm.DB, tracker aggregateTracker) *GormCuisineRepository {
	return &GormCuisineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cuisine to the database.
func (r *GormCuisineRepository) Add(ctx context.Context, aggregate *cuisine.Cuisine) error {
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

// Update saves an existing cuisine to the database.
func (r *GormCuisineRepository) Update(ctx context.Context, aggregate *cuisine.Cuisine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CuisineDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "is_active").
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

// Get retrieves a cuisine by ID.
func (r *GormCuisineRepository) Get(ctx context.Context, id kernel.UUID) (*cuisine.Cuisine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CuisineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cuisine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveNames retrieves the names of every active cuisine.
func (r *GormCuisineRepository) GetAllActiveNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&CuisineDTO{}).
		Where("is_active").
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}

	return names, nil
}
