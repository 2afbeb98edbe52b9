package commands

import (
	"context"
	"errors"

	"ghostkitchen/internal/core/domain/model/product"
)

// ErrRestaurantNotOwned is returned when a kitchen tries to edit a menu
// belonging to another kitchen.
var ErrRestaurantNotOwned = errors.New("restaurant belongs to another kitchen")

// CreateProductCommandHandler handles adding a product to a restaurant menu.
// The restaurant must belong to the acting kitchen.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !rest.KitchenID().IsEqual(cmd.KitchenID()) {
		return ErrRestaurantNotOwned
	}

	newProduct, err := product.NewProduct(cmd.ProductID(), cmd.RestaurantID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
