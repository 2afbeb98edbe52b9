package commands

import (
	"context"
)

// DiscontinueProductCommandHandler handles taking products off a menu.
// Discontinuation is a soft delete: the product stays behind so order item
// snapshots keep pointing at a real row.
type DiscontinueProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDiscontinueProductCommandHandler creates a handler for product discontinuation.
func NewDiscontinueProductCommandHandler(uowFactory ProductUoWFactory) DiscontinueProductCommandHandler {
	return DiscontinueProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the discontinuation command.
func (h *DiscontinueProductCommandHandler) Handle(ctx context.Context, cmd DiscontinueProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}
	if !rest.KitchenID().IsEqual(cmd.KitchenID()) {
		return ErrRestaurantNotOwned
	}

	aggregate.Discontinue()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
