package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
)

// CreateProductCommand represents a request to add a product to a
// restaurant's menu on behalf of the owning kitchen.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	restaurantID kernel.UUID
	kitchenID    kernel.UUID
	name         string
	price        float64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a menu product.
func NewCreateProductCommand(
	productID kernel.UUID,
	restaurantID kernel.UUID,
	kitchenID kernel.UUID,
	name string,
	price float64,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setRestaurantID(restaurantID),
		cmd.setKitchenID(kitchenID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// RestaurantID returns the menu the product is added to.
func (c CreateProductCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// KitchenID returns the kitchen acting on the menu.
func (c CreateProductCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's list price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateProductCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	c.kitchenID = kitchenID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
