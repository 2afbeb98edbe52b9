package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrGuestNameIsRequired   = errors.New("guest name is required")
)

// OrderLine is a single requested menu line: which product and how many.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a guest checkout request against a restaurant.
// The guest identifies themselves by name and phone; no account is required.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine
	guestName    string
	guestPhone   kernel.Phone

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one line and a guest name,
// and relies on kernel.Phone having been validated at construction.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	lines []OrderLine,
	guestName string,
	guestPhone kernel.Phone,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setGuest(guestName, guestPhone),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed against.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested menu lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// GuestName returns the name the guest checked out under.
func (c PlaceOrderCommand) GuestName() string {
	return c.guestName
}

// GuestPhone returns the guest's contact phone.
func (c PlaceOrderCommand) GuestPhone() kernel.Phone {
	return c.guestPhone
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setGuest(name string, phone kernel.Phone) error {
	if name == "" {
		return ErrGuestNameIsRequired
	}
	if err := phone.Validate(); err != nil {
		return err
	}

	c.guestName = name
	c.guestPhone = phone
	return nil
}
