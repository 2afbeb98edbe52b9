package commands

import (
	"errors"

	"ghostkitchen/internal/pkg/guard"
)

var ErrPurgeExpiredOTPsCommandIsNotConstructed = errors.New(
	"PurgeExpiredOTPsCommand must be created via NewPurgeExpiredOTPsCommand constructor",
)

// PurgeExpiredOTPsCommand triggers removal of every one-time code whose
// expiry has passed. Run periodically by the scheduler.
type PurgeExpiredOTPsCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredOTPsCommand creates a command to purge expired codes.
func NewPurgeExpiredOTPsCommand() PurgeExpiredOTPsCommand {
	return PurgeExpiredOTPsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *PurgeExpiredOTPsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredOTPsCommandIsNotConstructed)
}
