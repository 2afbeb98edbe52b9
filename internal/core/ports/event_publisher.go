package ports

import (
	"context"

	"ghostkitchen/internal/core/domain/model/kernel"
)

// Event names carried on the wire to subscribed clients.
const (
	EventNewOrder       = "NEW_ORDER"
	EventOrderUpdated   = "ORDER_UPDATED"
	EventETAUpdated     = "ETA_UPDATED"
	EventOrderCancelled = "ORDER_CANCELLED"
)

// OrderRoom is the room a customer joins to follow a single order.
func OrderRoom(orderID kernel.UUID) string {
	return orderID.String()
}

// KitchenRoom is the room a kitchen dashboard joins to follow every
// order placed against that kitchen.
func KitchenRoom(kitchenID kernel.UUID) string {
	return kitchenID.String()
}

// StatusChangedPayload is the body of an ORDER_UPDATED event.
type StatusChangedPayload struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ETAPayload is the body of an ETA_UPDATED event.
type ETAPayload struct {
	OrderID string  `json:"orderId"`
	ETA     string  `json:"eta"`
	Note    *string `json:"note"`
}

// EventPublisher delivers real-time events to every client subscribed
// to a room. Delivery is best effort: a failed publish never rolls back
// the business transaction that triggered it.
type EventPublisher interface {
	Publish(ctx context.Context, room string, event string, payload any) error
}
