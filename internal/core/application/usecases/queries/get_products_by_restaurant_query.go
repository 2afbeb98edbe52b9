package queries

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrGetProductsByRestaurantQueryIsNotConstructed = errors.New(
	"GetProductsByRestaurantQuery must be created via NewGetProductsByRestaurantQuery constructor",
)

// GetProductsByRestaurantQuery retrieves a restaurant's available menu.
// Discontinued products are excluded; this is the public menu view.
type GetProductsByRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsByRestaurantQuery creates a query for a restaurant's menu.
func NewGetProductsByRestaurantQuery(restaurantID kernel.UUID) (GetProductsByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetProductsByRestaurantQuery{}, err
	}

	return GetProductsByRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetProductsByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// ProductResponse represents one product in a menu listing.
type ProductResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
}
