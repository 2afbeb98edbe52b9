// Package cuisinerepo persists the cuisine catalog.
package cuisinerepo

import (
	"ghostkitchen/internal/core/domain/model/cuisine"
	"ghostkitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CuisineDTO represents the database structure for persisting cuisines.
type CuisineDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"uniqueIndex"`
	IsActive bool
}

// TableName specifies the database table name for cuisine entities.
func (CuisineDTO) TableName() string {
	return "cuisines"
}

func fromDomain(aggregate *cuisine.Cuisine) CuisineDTO {
	return CuisineDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto CuisineDTO) (*cuisine.Cuisine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return cuisine.RestoreCuisine(id, dto.Name, dto.IsActive)
}
