package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to rename or reprice a product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	kitchenID kernel.UUID
	name      string
	price     float64

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a menu product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	kitchenID kernel.UUID,
	name string,
	price float64,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setKitchenID(kitchenID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// KitchenID returns the kitchen acting on the menu.
func (c UpdateProductCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new list price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	c.kitchenID = kitchenID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
