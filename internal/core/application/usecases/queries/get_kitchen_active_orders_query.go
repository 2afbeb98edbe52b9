package queries

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrGetKitchenActiveOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenActiveOrdersQuery must be created via NewGetKitchenActiveOrdersQuery constructor",
)

// GetKitchenActiveOrdersQuery retrieves every order of a kitchen that is
// still moving through the delivery pipeline. Feeds the live dashboard.
type GetKitchenActiveOrdersQuery struct {
	kitchenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetKitchenActiveOrdersQuery creates a query for a kitchen's active orders.
func NewGetKitchenActiveOrdersQuery(kitchenID kernel.UUID) (GetKitchenActiveOrdersQuery, error) {
	if err := kitchenID.Validate(); err != nil {
		return GetKitchenActiveOrdersQuery{}, err
	}

	return GetKitchenActiveOrdersQuery{
		kitchenID: kitchenID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenActiveOrdersQueryIsNotConstructed)
}

// KitchenID returns the kitchen whose orders are requested.
func (q GetKitchenActiveOrdersQuery) KitchenID() kernel.UUID {
	return q.kitchenID
}
