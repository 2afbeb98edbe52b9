package ports

import (
	"context"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByRestaurant retrieves every product on a restaurant's menu,
	// discontinued ones included.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*product.Product, error)
}
