package commands

import (
	"errors"
	"strings"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrSignupKitchenCommandIsNotConstructed = errors.New(
		"SignupKitchenCommand must be created via NewSignupKitchenCommand constructor",
	)
	ErrEmailIsInvalid       = errors.New("email is invalid")
	ErrPasswordIsTooShort   = errors.New("password must be at least 8 characters")
	ErrKitchenNameIsInvalid = errors.New("kitchen name is required")
)

const minPasswordLength = 8

// SignupKitchenCommand represents a request to register a new kitchen
// together with its owning user account.
type SignupKitchenCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	kitchenID   kernel.UUID
	email       string
	password    string
	kitchenName string
	location    *string

	guard guard.ConstructorGuard
}

// NewSignupKitchenCommand creates a command to register a kitchen.
// The email is lowercased; the plain-text password is carried only until the
// handler hashes it.
func NewSignupKitchenCommand(
	userID kernel.UUID,
	kitchenID kernel.UUID,
	email string,
	password string,
	kitchenName string,
	location *string,
) (SignupKitchenCommand, error) {
	cmd := SignupKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setKitchenID(kitchenID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setKitchenName(kitchenName),
	); err != nil {
		return SignupKitchenCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSignupKitchenCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new user account.
func (c SignupKitchenCommand) UserID() kernel.UUID {
	return c.userID
}

// KitchenID returns the identifier assigned to the new kitchen.
func (c SignupKitchenCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

// Email returns the normalized login email.
func (c SignupKitchenCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed by the handler.
func (c SignupKitchenCommand) Password() string {
	return c.password
}

// KitchenName returns the display name of the kitchen.
func (c SignupKitchenCommand) KitchenName() string {
	return c.kitchenName
}

// Location returns the optional kitchen location.
func (c SignupKitchenCommand) Location() *string {
	return c.location
}

func (c *SignupKitchenCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SignupKitchenCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	c.kitchenID = kitchenID
	return nil
}

func (c *SignupKitchenCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *SignupKitchenCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *SignupKitchenCommand) setKitchenName(name string) error {
	if name == "" {
		return ErrKitchenNameIsInvalid
	}

	c.kitchenName = name
	return nil
}
