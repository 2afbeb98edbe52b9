// Package kitchen contains the kitchen tenant aggregate. A kitchen operates
// multiple restaurants and owns the orders placed against them.
package kitchen

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

// ErrKitchenIsNotConstructed is returned when a Kitchen instance was not
// created through NewKitchen or RestoreKitchen.
var ErrKitchenIsNotConstructed = errors.New("Kitchen must be created via NewKitchen or RestoreKitchen")

// Kitchen is a tenant: a physical facility running one or more restaurants.
type Kitchen struct {
	id       kernel.UUID
	name     string
	location *string
	isActive bool

	isConstructed bool
}

// NewKitchen creates an active kitchen. location is optional.
func NewKitchen(id kernel.UUID, name string, location *string) (*Kitchen, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("kitchen name")
	}

	return &Kitchen{
		id:            id,
		name:          name,
		location:      location,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreKitchen reconstructs a kitchen from persistence.
func RestoreKitchen(id kernel.UUID, name string, location *string, isActive bool) (*Kitchen, error) {
	k, err := NewKitchen(id, name, location)
	if err != nil {
		return nil, err
	}
	k.isActive = isActive
	return k, nil
}

// Validate ensures the Kitchen was created through a constructor.
func (k *Kitchen) Validate() error {
	if k == nil || !k.isConstructed {
		return ErrKitchenIsNotConstructed
	}
	return nil
}

// SetActive toggles whether the kitchen accepts orders.
func (k *Kitchen) SetActive(active bool) {
	k.isActive = active
}

// ID returns the kitchen id.
func (k *Kitchen) ID() kernel.UUID { return k.id }

// Name returns the kitchen display name.
func (k *Kitchen) Name() string { return k.name }

// Location returns the optional street address.
func (k *Kitchen) Location() *string { return k.location }

// IsActive reports whether the kitchen accepts orders.
func (k *Kitchen) IsActive() bool { return k.isActive }
