package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrCuisinesAreRequired      = errors.New("at least one cuisine is required")
)

// CreateRestaurantCommand represents a request to open a new virtual
// restaurant under an existing kitchen.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	kitchenID    kernel.UUID
	name         string
	cuisines     []string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to open a restaurant.
// Cuisine names are checked against the active catalog by the handler.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	kitchenID kernel.UUID,
	name string,
	cuisines []string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setKitchenID(kitchenID),
		cmd.setName(name),
		cmd.setCuisines(cuisines),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier assigned to the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// KitchenID returns the kitchen the restaurant belongs to.
func (c CreateRestaurantCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Cuisines returns the requested cuisine tags.
func (c CreateRestaurantCommand) Cuisines() []string {
	return c.cuisines
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	c.kitchenID = kitchenID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setCuisines(cuisines []string) error {
	if len(cuisines) == 0 {
		return ErrCuisinesAreRequired
	}

	c.cuisines = cuisines
	return nil
}
