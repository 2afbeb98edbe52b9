// Package account contains staff user accounts and password hashing.
// Guests have no account; only kitchen staff and admins authenticate.
package account

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the platform has always hashed with; raising it
// only affects newly stored hashes.
const bcryptCost = 10

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrInvalidCredentials is returned when a password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an authenticated platform account. Kitchen users carry the id of
// the tenant they are scoped to; admin users do not.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         order.ActorRole
	kitchenID    *kernel.UUID

	isConstructed bool
}

// NewUser creates a user with an already-hashed password (see HashPassword).
func NewUser(id kernel.UUID, email, passwordHash string, role order.ActorRole, kitchenID *kernel.UUID) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if role == order.RoleKitchen {
		if kitchenID == nil {
			return nil, errs.NewValueIsRequiredError("kitchenId for kitchen users")
		}
		if err := kitchenID.Validate(); err != nil {
			return nil, err
		}
	}

	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		kitchenID:     kitchenID,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, passwordHash string, role order.ActorRole, kitchenID *kernel.UUID) (*User, error) {
	return NewUser(id, email, passwordHash, role, kitchenID)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func (u *User) CheckPassword(plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ID returns the user id.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's actor role.
func (u *User) Role() order.ActorRole { return u.role }

// KitchenID returns the tenant scope for kitchen users, nil otherwise.
func (u *User) KitchenID() *kernel.UUID { return u.kitchenID }

// HashPassword hashes a plaintext password for storage.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
