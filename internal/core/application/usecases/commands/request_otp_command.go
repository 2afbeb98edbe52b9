package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var ErrRequestOTPCommandIsNotConstructed = errors.New(
	"RequestOTPCommand must be created via NewRequestOTPCommand constructor",
)

// RequestOTPCommand represents a guest asking for a one-time code so they can
// look up the orders placed under their phone number.
type RequestOTPCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewRequestOTPCommand creates a command to issue a one-time code.
func NewRequestOTPCommand(phone kernel.Phone) (RequestOTPCommand, error) {
	cmd := RequestOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPhone(phone); err != nil {
		return RequestOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestOTPCommand) Validate() error {
	return c.guard.Validate(ErrRequestOTPCommandIsNotConstructed)
}

// Phone returns the phone number the code is issued for.
func (c RequestOTPCommand) Phone() kernel.Phone {
	return c.phone
}

func (c *RequestOTPCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
