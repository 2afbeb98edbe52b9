package ports

import (
	"context"

	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	Add(ctx context.Context, aggregate *account.User) error
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves the account registered under the given email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
