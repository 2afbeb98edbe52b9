package order

import (
	"errors"
	"fmt"

	"ghostkitchen/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status is not reachable
// from the current status through the forward table.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Received ──> Preparing ──> OutForDelivery ──> Delivered
//
// plus the role-gated cancellation path into Cancelled (see ActorRole).
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is placed.
	Received

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for all statuses, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Received:       "RECEIVED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:       "RECEIVED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// forwardTable maps each status to the set of statuses reachable through the
// generic status-update operation. Cancellation is not part of this table;
// it is its own operation with role-based rules.
func forwardTable() map[Status][]Status {
	return map[Status][]Status{
		Received:       {Preparing},
		Preparing:      {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// Validate checks that the Status is one of the valid lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "OUT_FOR_DELIVERY".
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further status mutation is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanAdvanceTo reports whether next appears in the current status's
// allowed-next set.
func (s Status) CanAdvanceTo(next Status) bool {
	for _, allowed := range forwardTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AdvanceTo transitions to the requested status through the forward table.
//
// Returns:
//   - (next, nil) when the transition is listed in the forward table
//   - (0, error wrapping ErrInvalidTransition) otherwise; the caller's state
//     is left untouched
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanAdvanceTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
