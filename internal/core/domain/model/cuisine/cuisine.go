// Package cuisine contains the platform-wide cuisine registry entries that
// restaurants are validated against.
package cuisine

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

// ErrCuisineIsNotConstructed is returned when a Cuisine instance was not
// created through NewCuisine or RestoreCuisine.
var ErrCuisineIsNotConstructed = errors.New("Cuisine must be created via NewCuisine or RestoreCuisine")

// Cuisine is a registry entry. Inactive cuisines stay in storage but cannot
// be attached to new restaurants.
type Cuisine struct {
	id       kernel.UUID
	name     string
	isActive bool

	isConstructed bool
}

// NewCuisine creates an active cuisine registry entry.
func NewCuisine(id kernel.UUID, name string) (*Cuisine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("cuisine name")
	}

	return &Cuisine{id: id, name: name, isActive: true, isConstructed: true}, nil
}

// RestoreCuisine reconstructs a cuisine from persistence.
func RestoreCuisine(id kernel.UUID, name string, isActive bool) (*Cuisine, error) {
	c, err := NewCuisine(id, name)
	if err != nil {
		return nil, err
	}
	c.isActive = isActive
	return c, nil
}

// Validate ensures the Cuisine was created through a constructor.
func (c *Cuisine) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCuisineIsNotConstructed
	}
	return nil
}

// SetActive toggles whether new restaurants may use this cuisine.
func (c *Cuisine) SetActive(active bool) {
	c.isActive = active
}

// ID returns the cuisine id.
func (c *Cuisine) ID() kernel.UUID { return c.id }

// Name returns the cuisine name.
func (c *Cuisine) Name() string { return c.name }

// IsActive reports whether the cuisine can be attached to new restaurants.
func (c *Cuisine) IsActive() bool { return c.isActive }
