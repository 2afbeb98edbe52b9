// Package restaurant contains the restaurant aggregate: a storefront brand
// run by a kitchen, selling products under a set of cuisines.
package restaurant

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant is a storefront owned by a kitchen tenant. Cuisine names must be
// validated against the active cuisine registry before construction.
type Restaurant struct {
	id        kernel.UUID
	kitchenID kernel.UUID
	name      string
	cuisines  []string
	isActive  bool

	isConstructed bool
}

// NewRestaurant creates an active restaurant under the given kitchen.
func NewRestaurant(id, kitchenID kernel.UUID, name string, cuisines []string) (*Restaurant, error) {
	if err := errors.Join(id.Validate(), kitchenID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}
	if len(cuisines) == 0 {
		return nil, errs.NewValueIsRequiredError("cuisines")
	}
	for _, c := range cuisines {
		if c == "" {
			return nil, errs.NewValueIsInvalidError("cuisine name")
		}
	}

	return &Restaurant{
		id:            id,
		kitchenID:     kitchenID,
		name:          name,
		cuisines:      cuisines,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id, kitchenID kernel.UUID, name string, cuisines []string, isActive bool) (*Restaurant, error) {
	r, err := NewRestaurant(id, kitchenID, name, cuisines)
	if err != nil {
		return nil, err
	}
	r.isActive = isActive
	return r, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// SetActive toggles public visibility of the restaurant.
func (r *Restaurant) SetActive(active bool) {
	r.isActive = active
}

// ID returns the restaurant id.
func (r *Restaurant) ID() kernel.UUID { return r.id }

// KitchenID returns the owning kitchen's id.
func (r *Restaurant) KitchenID() kernel.UUID { return r.kitchenID }

// Name returns the restaurant display name.
func (r *Restaurant) Name() string { return r.name }

// Cuisines returns the cuisine names this restaurant serves.
func (r *Restaurant) Cuisines() []string { return r.cuisines }

// IsActive reports whether the restaurant is publicly listed.
func (r *Restaurant) IsActive() bool { return r.isActive }
