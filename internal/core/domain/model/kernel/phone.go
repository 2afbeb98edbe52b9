package kernel

import (
	"fmt"

	"ghostkitchen/internal/pkg/errs"
)

const (
	phoneMinDigits = 7
	phoneMaxDigits = 15
)

// Phone is a guest contact number. Validation is deliberately loose: digits
// with an optional leading "+", between 7 and 15 digits. Guests type these by
// hand and the number is only used for lookup and OTP delivery.
type Phone struct {
	value string
}

// NewPhone validates and creates a phone number value object.
func NewPhone(s string) (Phone, error) {
	digits := 0
	for i, r := range s {
		switch {
		case r == '+' && i == 0:
		case r >= '0' && r <= '9':
			digits++
		default:
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains non-digit characters", s))
		}
	}
	if digits < phoneMinDigits || digits > phoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", digits, phoneMinDigits, phoneMaxDigits)
	}
	return Phone{value: s}, nil
}

// String returns the phone number as entered.
func (p Phone) String() string {
	return p.value
}

// IsEqual reports whether two phone numbers are the same string.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate returns an error for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("phone must be created via NewPhone")
	}
	return nil
}
