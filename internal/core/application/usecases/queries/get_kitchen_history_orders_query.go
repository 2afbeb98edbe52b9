package queries

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrGetKitchenHistoryOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenHistoryOrdersQuery must be created via NewGetKitchenHistoryOrdersQuery constructor",
)

// GetKitchenHistoryOrdersQuery retrieves a kitchen's finished orders,
// delivered and cancelled alike.
type GetKitchenHistoryOrdersQuery struct {
	kitchenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetKitchenHistoryOrdersQuery creates a query for a kitchen's order history.
func NewGetKitchenHistoryOrdersQuery(kitchenID kernel.UUID) (GetKitchenHistoryOrdersQuery, error) {
	if err := kitchenID.Validate(); err != nil {
		return GetKitchenHistoryOrdersQuery{}, err
	}

	return GetKitchenHistoryOrdersQuery{
		kitchenID: kitchenID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenHistoryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenHistoryOrdersQueryIsNotConstructed)
}

// KitchenID returns the kitchen whose history is requested.
func (q GetKitchenHistoryOrdersQuery) KitchenID() kernel.UUID {
	return q.kitchenID
}
