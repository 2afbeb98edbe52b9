package order

import (
	"errors"
	"fmt"

	"ghostkitchen/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyFinal is returned when cancellation is attempted on an
	// order that is already Delivered or Cancelled.
	ErrOrderAlreadyFinal = errors.New("order is already final")

	// ErrTooLateToCancel is returned when the actor's cancellation window has
	// closed for the order's current status.
	ErrTooLateToCancel = errors.New("too late to cancel")
)

// ActorRole is the permission class of the entity invoking a mutation.
// It is a closed set; request-layer role strings are parsed once at the edge
// and only these values flow through the lifecycle rules.
type ActorRole int

const (
	// RoleUnknown means the caller's role could not be resolved. Cancellation
	// by an unknown actor is recorded as RoleSystem.
	RoleUnknown ActorRole = iota

	// RoleCustomer is a guest or authenticated customer.
	RoleCustomer

	// RoleKitchen is kitchen staff scoped to one kitchen tenant.
	RoleKitchen

	// RoleAdmin is a platform operator.
	RoleAdmin

	// RoleSystem marks mutations performed without a user context.
	RoleSystem
)

func getRoleStrings() map[ActorRole]string {
	return map[ActorRole]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleKitchen:  "KITCHEN",
		RoleAdmin:    "ADMIN",
		RoleSystem:   "SYSTEM",
	}
}

// String returns the wire name of the role, e.g. "KITCHEN".
func (r ActorRole) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// RoleFromString parses a wire name into an ActorRole. Unrecognized values
// map to RoleUnknown rather than failing; cancellation bookkeeping records
// unknown actors as system-level.
func RoleFromString(s string) ActorRole {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role
		}
	}
	return RoleUnknown
}

// cancellationWindow lists, per role, the non-terminal statuses from which
// that role may cancel. Roles absent from the table (Admin, System, Unknown)
// carry no restriction beyond the not-already-final precondition; that
// asymmetry with the customer/kitchen rules is deliberate.
func cancellationWindow() map[ActorRole]map[Status]bool {
	return map[ActorRole]map[Status]bool{
		RoleCustomer: {
			Received:       true,
			Preparing:      false,
			OutForDelivery: false,
		},
		RoleKitchen: {
			Received:       true,
			Preparing:      true,
			OutForDelivery: false,
		},
	}
}

// CanCancelFrom decides cancellation legality for this role against the
// order's current status. It is total over (role, status):
//
//   - terminal status: ErrOrderAlreadyFinal, regardless of role
//   - Customer: permitted only from Received
//   - Kitchen: permitted from Received and Preparing
//   - Admin/System/Unknown: permitted from any non-terminal status
func (r ActorRole) CanCancelFrom(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrOrderAlreadyFinal, s)
	}

	window, restricted := cancellationWindow()[r]
	if restricted && !window[s] {
		return fmt.Errorf("%w: %s cannot cancel a %s order", ErrTooLateToCancel, r, s)
	}
	return nil
}

// Validate checks that the role is one of the closed set (Unknown excluded).
func (r ActorRole) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid actor role", r))
	}
	return nil
}
