package queries

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrGetRestaurantsByKitchenQueryIsNotConstructed = errors.New(
	"GetRestaurantsByKitchenQuery must be created via NewGetRestaurantsByKitchenQuery constructor",
)

// GetRestaurantsByKitchenQuery retrieves every restaurant a kitchen runs,
// inactive ones included. Backs the kitchen's own management view.
type GetRestaurantsByKitchenQuery struct {
	kitchenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantsByKitchenQuery creates a query for a kitchen's restaurants.
func NewGetRestaurantsByKitchenQuery(kitchenID kernel.UUID) (GetRestaurantsByKitchenQuery, error) {
	if err := kitchenID.Validate(); err != nil {
		return GetRestaurantsByKitchenQuery{}, err
	}

	return GetRestaurantsByKitchenQuery{
		kitchenID: kitchenID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsByKitchenQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsByKitchenQueryIsNotConstructed)
}

// KitchenID returns the kitchen whose restaurants are requested.
func (q GetRestaurantsByKitchenQuery) KitchenID() kernel.UUID {
	return q.kitchenID
}

// RestaurantResponse represents one restaurant in a listing.
type RestaurantResponse struct {
	ID        string   `json:"id"`
	KitchenID string   `json:"kitchenId"`
	Name      string   `json:"name"`
	Cuisines  []string `json:"cuisines"`
	IsActive  bool     `json:"isActive"`
}
