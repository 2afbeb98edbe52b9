// Package restaurantrepo persists restaurant aggregates.
// Cuisine tags are stored as a native postgres text array.
package restaurantrepo

import (
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	KitchenID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Cuisines  pq.StringArray `gorm:"type:text[]"`
	IsActive  bool           `gorm:"index"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		KitchenID: aggregate.KitchenID().Bytes(),
		Name:      aggregate.Name(),
		Cuisines:  aggregate.Cuisines(),
		IsActive:  aggregate.IsActive(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kitchenID, err := kernel.UUIDFromBytes(dto.KitchenID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, kitchenID, dto.Name, dto.Cuisines, dto.IsActive)
}
