package queries

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/guard"
)

var (
	ErrGetOrdersByPhoneQueryIsNotConstructed = errors.New(
		"GetOrdersByPhoneQuery must be created via NewGetOrdersByPhoneQuery constructor",
	)
	ErrVerificationTokenIsRequired = errors.New("verification token is required")
)

// GetOrdersByPhoneQuery retrieves every order a guest placed under their
// phone number. Requires the verification token handed out after a
// successful one-time-code check.
type GetOrdersByPhoneQuery struct {
	phone kernel.Phone
	token string

	guard guard.ConstructorGuard
}

// NewGetOrdersByPhoneQuery creates a query for a guest's order history.
func NewGetOrdersByPhoneQuery(phone kernel.Phone, token string) (GetOrdersByPhoneQuery, error) {
	if err := phone.Validate(); err != nil {
		return GetOrdersByPhoneQuery{}, err
	}
	if token == "" {
		return GetOrdersByPhoneQuery{}, ErrVerificationTokenIsRequired
	}

	return GetOrdersByPhoneQuery{
		phone: phone,
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPhoneQueryIsNotConstructed)
}

// Phone returns the phone number whose orders are requested.
func (q GetOrdersByPhoneQuery) Phone() kernel.Phone {
	return q.phone
}

// Token returns the supplied verification token.
func (q GetOrdersByPhoneQuery) Token() string {
	return q.token
}
