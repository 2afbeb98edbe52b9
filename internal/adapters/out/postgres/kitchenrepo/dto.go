// Package kitchenrepo persists kitchen aggregates.
package kitchenrepo

import (
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
)

// KitchenDTO represents the database structure for persisting kitchens.
type KitchenDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Location *string
	IsActive bool
}

// TableName specifies the database table name for kitchen entities.
func (KitchenDTO) TableName() string {
	return "kitchens"
}

func fromDomain(aggregate *kitchen.Kitchen) KitchenDTO {
	return KitchenDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Location: aggregate.Location(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto KitchenDTO) (*kitchen.Kitchen, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreKitchen(id, dto.Name, dto.Location, dto.IsActive)
}
