// Package product contains the product aggregate: a menu entry sold by a
// restaurant. Orders snapshot product name and price at placement time, so
// edits here never reach placed orders.
package product

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a live menu entry. isAvailable doubles as a soft-delete flag:
// discontinued products stay in storage so historical order items keep a
// resolvable product id.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        float64
	isAvailable  bool

	isConstructed bool
}

// NewProduct creates an available product on a restaurant's menu.
func NewProduct(id, restaurantID kernel.UUID, name string, price float64) (*Product, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &Product{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isAvailable:   true,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id, restaurantID kernel.UUID, name string, price float64, isAvailable bool) (*Product, error) {
	p, err := NewProduct(id, restaurantID, name, price)
	if err != nil {
		return nil, err
	}
	p.isAvailable = isAvailable
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Update renames and reprices the live product. Placed orders are unaffected:
// their items carry snapshots.
func (p *Product) Update(name string, price float64) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.name = name
	p.price = price
	return nil
}

// Discontinue removes the product from the live menu without deleting it.
func (p *Product) Discontinue() {
	p.isAvailable = false
}

// ID returns the product id.
func (p *Product) ID() kernel.UUID { return p.id }

// RestaurantID returns the owning restaurant's id.
func (p *Product) RestaurantID() kernel.UUID { return p.restaurantID }

// Name returns the current live name.
func (p *Product) Name() string { return p.name }

// Price returns the current live price.
func (p *Product) Price() float64 { return p.price }

// IsAvailable reports whether the product is on the live menu.
func (p *Product) IsAvailable() bool { return p.isAvailable }
