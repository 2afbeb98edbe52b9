// Package otp contains the one-time codes guests use to prove ownership of a
// phone number before reading their order history.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
)

// codeTTL is how long a code stays redeemable after issuance.
const codeTTL = 5 * time.Minute

var (
	// ErrOTPIsNotConstructed is returned when an OTP instance was not created
	// through NewOTP or RestoreOTP.
	ErrOTPIsNotConstructed = errors.New("OTP must be created via NewOTP or RestoreOTP")

	// ErrCodeMismatch is returned when the submitted code does not match.
	ErrCodeMismatch = errors.New("verification code does not match")

	// ErrCodeExpired is returned when the code's TTL has elapsed.
	ErrCodeExpired = errors.New("verification code has expired")
)

// OTP is a short-lived numeric code issued to a guest's phone.
// One live code per phone: issuing a new code replaces the previous one.
type OTP struct {
	phone     kernel.Phone
	code      string
	expiresAt time.Time

	isConstructed bool
}

// NewOTP issues a fresh 6-digit code for the phone, valid for five minutes.
func NewOTP(phone kernel.Phone, now time.Time) (*OTP, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	code, err := randomCode()
	if err != nil {
		return nil, err
	}

	return &OTP{
		phone:         phone,
		code:          code,
		expiresAt:     now.Add(codeTTL),
		isConstructed: true,
	}, nil
}

// RestoreOTP reconstructs an OTP from persistence.
func RestoreOTP(phone kernel.Phone, code string, expiresAt time.Time) (*OTP, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}
	if len(code) != 6 {
		return nil, fmt.Errorf("OTP code must be 6 digits, got %d characters", len(code))
	}
	return &OTP{phone: phone, code: code, expiresAt: expiresAt, isConstructed: true}, nil
}

// Validate ensures the OTP was created through a constructor.
func (o *OTP) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOTPIsNotConstructed
	}
	return nil
}

// Verify checks a submitted code against this OTP.
func (o *OTP) Verify(code string, now time.Time) error {
	if now.After(o.expiresAt) {
		return ErrCodeExpired
	}
	if o.code != code {
		return ErrCodeMismatch
	}
	return nil
}

// Phone returns the phone number the code was issued for.
func (o *OTP) Phone() kernel.Phone { return o.phone }

// Code returns the numeric code. Exposed for the SMS delivery adapter
// and for persistence; never returned over the API.
func (o *OTP) Code() string { return o.code }

// ExpiresAt returns the expiry timestamp.
func (o *OTP) ExpiresAt() time.Time { return o.expiresAt }

// VerificationToken derives the long-lived proof a guest holds after a
// successful OTP check: sha256(phone + secret), hex-encoded. Order history
// reads by phone require this token instead of a session.
func VerificationToken(phone kernel.Phone, secret string) string {
	sum := sha256.Sum256([]byte(phone.String() + secret))
	return hex.EncodeToString(sum[:])
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
