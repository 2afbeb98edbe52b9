package queries

import (
	"errors"

	"ghostkitchen/internal/pkg/guard"
)

var ErrGetActiveRestaurantsQueryIsNotConstructed = errors.New(
	"GetActiveRestaurantsQuery must be created via NewGetActiveRestaurantsQuery constructor",
)

// GetActiveRestaurantsQuery retrieves every active restaurant on the
// platform. This is the public storefront listing.
type GetActiveRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveRestaurantsQuery creates a query for the public restaurant listing.
func NewGetActiveRestaurantsQuery() GetActiveRestaurantsQuery {
	return GetActiveRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRestaurantsQueryIsNotConstructed)
}
