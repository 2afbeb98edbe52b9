package ports

import (
	"context"

	"ghostkitchen/internal/core/domain/model/cuisine"
	"ghostkitchen/internal/core/domain/model/kernel"
)

// CuisineRepository defines the persistence contract for the cuisine catalog.
type CuisineRepository interface {
	Add(ctx context.Context, aggregate *cuisine.Cuisine) error
	Update(ctx context.Context, aggregate *cuisine.Cuisine) error
	Get(ctx context.Context, id kernel.UUID) (*cuisine.Cuisine, error)

	// GetAllActiveNames retrieves the names of every active cuisine.
	// Used to validate the cuisine tags supplied when a restaurant is created.
	GetAllActiveNames(ctx context.Context) ([]string, error)
}
