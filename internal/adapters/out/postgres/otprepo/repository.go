package otprepo

import (
	"context"
	"errors"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/otp"
	"ghostkitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOTPRepository implements OTPRepository using GORM.
type GormOTPRepository struct {
	db *gorm.DB
}

// NewGormOTPRepository creates a new GORM one-time-code repository.
func NewGormOTPRepository(db *gorm.DB) *GormOTPRepository {
	return &GormOTPRepository{db: db}
}

// Upsert stores the code for the phone, replacing any previous one.
func (r *GormOTPRepository) Upsert(ctx context.Context, aggregate *otp.OTP) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at"}),
		}).
		Create(&dto).Error
}

// GetByPhone retrieves the outstanding code for a phone.
func (r *GormOTPRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*otp.OTP, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto OTPDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByPhone removes the outstanding code for a phone, if any.
func (r *GormOTPRepository) DeleteByPhone(ctx context.Context, phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OTPDTO{}, "phone = ?", phone.String()).Error
}

// DeleteExpired removes every code that expired before the given moment.
func (r *GormOTPRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&OTPDTO{}, "expires_at < ?", before)
	return result.RowsAffected, result.Error
}
