package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrDiscontinueProductCommandIsNotConstructed = errors.New(
	"DiscontinueProductCommand must be created via NewDiscontinueProductCommand constructor",
)

// DiscontinueProductCommand represents a request to take a product off a
// menu. The row is kept so historical order items keep resolving.
type DiscontinueProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	kitchenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDiscontinueProductCommand creates a command to discontinue a product.
func NewDiscontinueProductCommand(productID, kitchenID kernel.UUID) (DiscontinueProductCommand, error) {
	cmd := DiscontinueProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setKitchenID(kitchenID),
	); err != nil {
		return DiscontinueProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DiscontinueProductCommand) Validate() error {
	return c.guard.Validate(ErrDiscontinueProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to discontinue.
func (c DiscontinueProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// KitchenID returns the kitchen acting on the menu.
func (c DiscontinueProductCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

func (c *DiscontinueProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *DiscontinueProductCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	c.kitchenID = kitchenID
	return nil
}
