// Package otprepo persists one-time codes, keyed by phone number.
package otprepo

import (
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/otp"
)

// OTPDTO represents the database structure for persisting one-time codes.
// The phone is the primary key: a phone has at most one outstanding code.
type OTPDTO struct {
	Phone     string `gorm:"primaryKey"`
	Code      string
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for one-time codes.
func (OTPDTO) TableName() string {
	return "otps"
}

func fromDomain(aggregate *otp.OTP) OTPDTO {
	return OTPDTO{
		Phone:     aggregate.Phone().String(),
		Code:      aggregate.Code(),
		ExpiresAt: aggregate.ExpiresAt(),
	}
}

func toDomain(dto OTPDTO) (*otp.OTP, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return otp.RestoreOTP(phone, dto.Code, dto.ExpiresAt)
}
