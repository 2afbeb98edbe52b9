package ports

import (
	"context"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/otp"
)

// OTPRepository defines the persistence contract for one-time codes.
// A phone has at most one outstanding code; issuing a new one replaces it.
type OTPRepository interface {
	Upsert(ctx context.Context, aggregate *otp.OTP) error
	GetByPhone(ctx context.Context, phone kernel.Phone) (*otp.OTP, error)
	DeleteByPhone(ctx context.Context, phone kernel.Phone) error

	// DeleteExpired removes every code that expired before the given moment
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
