package ports

import (
	"context"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/kitchen"
)

// KitchenRepository defines the persistence contract for kitchen aggregates.
type KitchenRepository interface {
	Add(ctx context.Context, aggregate *kitchen.Kitchen) error
	Update(ctx context.Context, aggregate *kitchen.Kitchen) error
	Get(ctx context.Context, id kernel.UUID) (*kitchen.Kitchen, error)
}
