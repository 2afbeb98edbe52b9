package order

import (
	"errors"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"
)

// defaultETAOffset is the ETA promised to the customer at placement time,
// before the kitchen has looked at the order.
const defaultETAOffset = 30 * time.Minute

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for the order lifecycle. It owns the status
// state machine, the cancellation bookkeeping, and the item snapshots.
//
// Invariants:
//   - Items are value snapshots; total is computed once at construction
//   - Status only changes through AdvanceTo and Cancel
//   - deliveredAt is stamped exactly once, on the transition into Delivered
//   - cancelReason/cancelledBy are set exactly once, on the transition into Cancelled
type Order struct {
	id           kernel.UUID
	orderNumber  kernel.OrderNumber
	kitchenID    kernel.UUID
	restaurantID kernel.UUID
	items        []Item
	total        float64
	status       Status
	guest        *Guest
	createdAt    time.Time
	eta          *time.Time
	etaNotes     *string
	cancelReason *string
	cancelledBy  ActorRole
	deliveredAt  *time.Time

	isConstructed bool
}

// NewOrder creates a freshly placed order in Received status.
// The order number is derived from the placement time, the ETA defaults to
// now+30m, and the total is computed from the item snapshots and stored.
// guest may be nil for orders placed by authenticated customers.
func NewOrder(
	id kernel.UUID,
	kitchenID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	guest *Guest,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		kitchenID.Validate(),
		restaurantID.Validate(),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	eta := now.Add(defaultETAOffset)
	return &Order{
		id:            id,
		orderNumber:   kernel.NewOrderNumber(now),
		kitchenID:     kitchenID,
		restaurantID:  restaurantID,
		items:         items,
		total:         sumItems(items),
		status:        Received,
		guest:         guest,
		createdAt:     now,
		eta:           &eta,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// placement-time defaults. The stored total is taken as-is: it is a snapshot,
// never recomputed on read.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	kitchenID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	total float64,
	status Status,
	guest *Guest,
	createdAt time.Time,
	eta *time.Time,
	etaNotes *string,
	cancelReason *string,
	cancelledBy ActorRole,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderNumber.Validate(),
		kitchenID.Validate(),
		restaurantID.Validate(),
		validateItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		kitchenID:     kitchenID,
		restaurantID:  restaurantID,
		items:         items,
		total:         total,
		status:        status,
		guest:         guest,
		createdAt:     createdAt,
		eta:           eta,
		etaNotes:      etaNotes,
		cancelReason:  cancelReason,
		cancelledBy:   cancelledBy,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AdvanceTo moves the order to the requested status through the forward table.
//
// Fails with ErrInvalidTransition (order untouched) when the requested status
// is not in the current status's allowed-next set; this covers self-loops,
// skips, reversals, and any mutation of a terminal order. Transitioning into
// Delivered additionally stamps deliveredAt with now.
func (o *Order) AdvanceTo(next Status, now time.Time) error {
	newStatus, err := o.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		o.deliveredAt = &now
	}
	return nil
}

// Cancel moves the order to Cancelled under the actor's cancellation window.
//
// Fails with ErrOrderAlreadyFinal when the order is already Delivered or
// Cancelled, and with ErrTooLateToCancel when the role's window has closed.
// The reason is stored verbatim; an unknown actor role is recorded as SYSTEM.
func (o *Order) Cancel(reason string, by ActorRole) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}
	if err := by.CanCancelFrom(o.status); err != nil {
		return err
	}

	if by == RoleUnknown {
		by = RoleSystem
	}
	o.status = Cancelled
	o.cancelReason = &reason
	o.cancelledBy = by
	return nil
}

// SetETA overwrites the ETA and its note. There is no status-based restriction:
// ETA communication stays meaningful even close to completion. A nil note
// clears any previous note.
func (o *Order) SetETA(eta time.Time, note *string) {
	o.eta = &eta
	o.etaNotes = note
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// KitchenID returns the owning kitchen's id.
func (o *Order) KitchenID() kernel.UUID {
	return o.kitchenID
}

// RestaurantID returns the owning restaurant's id.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns the line item snapshots.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the total computed at placement time.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Guest returns guest contact info, or nil for authenticated orders.
func (o *Order) Guest() *Guest {
	return o.guest
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ETA returns the promised delivery time, if one is set.
func (o *Order) ETA() *time.Time {
	return o.eta
}

// ETANotes returns the free-text note attached to the ETA, if any.
func (o *Order) ETANotes() *string {
	return o.etaNotes
}

// CancelReason returns the reason recorded at cancellation, if any.
func (o *Order) CancelReason() *string {
	return o.cancelReason
}

// CancelledBy returns the role that cancelled the order,
// or RoleUnknown when the order is not cancelled.
func (o *Order) CancelledBy() ActorRole {
	return o.cancelledBy
}

// DeliveredAt returns the delivery timestamp, if the order was delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func sumItems(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
