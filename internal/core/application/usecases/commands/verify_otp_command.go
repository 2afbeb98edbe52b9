package commands

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrVerifyOTPCommandIsNotConstructed = errors.New(
		"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
)

// VerifyOTPCommand represents a guest submitting the one-time code they
// received, in exchange for a verification token.
type VerifyOTPCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyOTPCommand creates a command to verify a one-time code.
func NewVerifyOTPCommand(phone kernel.Phone, code string) (VerifyOTPCommand, error) {
	cmd := VerifyOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setCode(code),
	); err != nil {
		return VerifyOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

// Phone returns the phone number being verified.
func (c VerifyOTPCommand) Phone() kernel.Phone {
	return c.phone
}

// Code returns the submitted one-time code.
func (c VerifyOTPCommand) Code() string {
	return c.code
}

func (c *VerifyOTPCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *VerifyOTPCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}
