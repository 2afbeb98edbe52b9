package kernel

import (
	"fmt"
	"strings"
	"time"

	"ghostkitchen/internal/pkg/errs"
)

// orderNumberPrefix is part of the public order number format ("ORD-<unix millis>")
// shown on receipts and tracking pages.
const orderNumberPrefix = "ORD-"

// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber that did not
// come from NewOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-readable identifier printed on receipts and used by
// guests to reference an order. Distinct from the order's UUID.
type OrderNumber struct {
	value string
}

// NewOrderNumber derives an order number from the order creation time.
// Creation times within the same millisecond collide; the unique index on the
// orders table rejects the duplicate and the caller retries placement.
func NewOrderNumber(createdAt time.Time) OrderNumber {
	return OrderNumber{value: fmt.Sprintf("%s%d", orderNumberPrefix, createdAt.UnixMilli())}
}

// OrderNumberFromString restores an order number from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !strings.HasPrefix(s, orderNumberPrefix) || len(s) == len(orderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match the ORD-<millis> format", s))
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number in its wire form, e.g. "ORD-1717171717000".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
