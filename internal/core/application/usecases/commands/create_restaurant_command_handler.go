package commands

import (
	"context"
	"fmt"

	"ghostkitchen/internal/core/domain/model/restaurant"
	"ghostkitchen/internal/pkg/errs"
)

// CreateRestaurantCommandHandler handles opening a virtual restaurant.
// Every requested cuisine tag must name an active cuisine in the catalog.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant creation.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	activeNames, err := uow.CuisineRepository().GetAllActiveNames(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(activeNames))
	for _, name := range activeNames {
		known[name] = struct{}{}
	}

	for _, requested := range cmd.Cuisines() {
		if _, ok := known[requested]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"cuisines", fmt.Errorf("unknown cuisine %q", requested),
			)
		}
	}

	rest, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.KitchenID(), cmd.Name(), cmd.Cuisines())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
