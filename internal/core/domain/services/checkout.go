package services

import (
	"errors"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/domain/model/product"
)

// ErrProductUnavailable is returned when a requested product is missing from
// the menu or has been discontinued.
var ErrProductUnavailable = errors.New("product unavailable")

// ItemRequest is a single menu line requested at checkout: which product
// and how many of it.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// Checkout is a domain service that turns a checkout request into order line
// items. Each line snapshots the product's current name and price so later
// menu edits never rewrite the history of an already placed order.
//
// Business rules:
//   - Every requested product must exist and be available
//   - Name and price are copied into the item at checkout time
//   - Quantity limits are enforced by the item itself
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() Checkout {
	return Checkout{}
}

// BuildItems resolves the requested lines against the given menu and returns
// order items with price snapshots taken.
//
// Returns ErrProductUnavailable when a requested product is not on the menu
// or is no longer available.
func (c Checkout) BuildItems(requests []ItemRequest, menu []*product.Product) ([]order.Item, error) {
	byID := make(map[string]*product.Product, len(menu))
	for _, p := range menu {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID().String()] = p
	}

	items := make([]order.Item, 0, len(requests))
	for _, req := range requests {
		p, ok := byID[req.ProductID.String()]
		if !ok || !p.IsAvailable() {
			return nil, ErrProductUnavailable
		}

		item, err := order.NewItem(p.ID(), p.Name(), req.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
