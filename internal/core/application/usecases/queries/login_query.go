package queries

import (
	"errors"
	"strings"

	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
	ErrLoginEmailIsRequired    = errors.New("email is required")
	ErrLoginPasswordIsRequired = errors.New("password is required")
)

// LoginQuery checks a user's credentials and returns their identity.
// Token issuance happens at the HTTP layer; this query only authenticates.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a credential check query. The email is lowercased to
// match how signup stores it.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginQuery{}, ErrLoginEmailIsRequired
	}
	if password == "" {
		return LoginQuery{}, ErrLoginPasswordIsRequired
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the submitted plain-text password.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginResponse identifies the authenticated user.
type LoginResponse struct {
	UserID    string
	Role      string
	KitchenID *string
}
