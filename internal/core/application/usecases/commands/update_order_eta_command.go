package commands

import (
	"errors"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrUpdateOrderETACommandIsNotConstructed = errors.New(
		"UpdateOrderETACommand must be created via NewUpdateOrderETACommand constructor",
	)
	ErrETAIsRequired = errors.New("eta is required")
)

// UpdateOrderETACommand represents a kitchen's revised delivery estimate for
// an order. The note is optional; passing nil clears any previous note.
type UpdateOrderETACommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	eta     time.Time
	note    *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderETACommand creates a command to overwrite an order's ETA.
func NewUpdateOrderETACommand(orderID kernel.UUID, eta time.Time, note *string) (UpdateOrderETACommand, error) {
	cmd := UpdateOrderETACommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setETA(eta),
	); err != nil {
		return UpdateOrderETACommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderETACommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderETACommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderETACommand) OrderID() kernel.UUID {
	return c.orderID
}

// ETA returns the revised delivery estimate.
func (c UpdateOrderETACommand) ETA() time.Time {
	return c.eta
}

// Note returns the optional note attached to the estimate, or nil.
func (c UpdateOrderETACommand) Note() *string {
	return c.note
}

func (c *UpdateOrderETACommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderETACommand) setETA(eta time.Time) error {
	if eta.IsZero() {
		return ErrETAIsRequired
	}

	c.eta = eta
	return nil
}
