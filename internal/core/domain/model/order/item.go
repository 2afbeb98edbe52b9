package order

import (
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

const (
	itemMinQuantity = 1
	itemMaxQuantity = 100
)

// Item is a line item on an order. Name and price are snapshots of the product
// taken at placement time, not live references; editing the product afterwards
// never changes a placed order.
type Item struct {
	productID     kernel.UUID
	name          string
	quantity      int
	priceSnapshot float64
}

// NewItem creates a validated line item snapshot.
func NewItem(productID kernel.UUID, name string, quantity int, priceSnapshot float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < itemMinQuantity || quantity > itemMaxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, itemMinQuantity, itemMaxQuantity)
	}
	if priceSnapshot < 0 {
		return Item{}, errs.NewValueIsInvalidError("priceSnapshot")
	}

	return Item{
		productID:     productID,
		name:          name,
		quantity:      quantity,
		priceSnapshot: priceSnapshot,
	}, nil
}

// ProductID returns the id of the product the snapshot was taken from.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name at placement time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceSnapshot returns the unit price at placement time.
func (i Item) PriceSnapshot() float64 {
	return i.priceSnapshot
}

// Subtotal returns priceSnapshot * quantity.
func (i Item) Subtotal() float64 {
	return i.priceSnapshot * float64(i.quantity)
}

// Validate returns an error for a zero-value item.
func (i Item) Validate() error {
	if err := i.productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item must be created via NewItem", err)
	}
	return nil
}

// Guest identifies an unauthenticated orderer. There is no customer account
// entity; the name and phone on the order are all the platform knows.
type Guest struct {
	name  string
	phone kernel.Phone
}

// NewGuest creates guest contact info for an order.
func NewGuest(name string, phone kernel.Phone) (Guest, error) {
	if name == "" {
		return Guest{}, errs.NewValueIsRequiredError("guest name")
	}
	if err := phone.Validate(); err != nil {
		return Guest{}, err
	}
	return Guest{name: name, phone: phone}, nil
}

// Name returns the guest's display name.
func (g Guest) Name() string {
	return g.name
}

// Phone returns the guest's contact number.
func (g Guest) Phone() kernel.Phone {
	return g.phone
}
