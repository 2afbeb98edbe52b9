package queries

import (
	"context"
	"errors"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/domain/model/otp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrVerificationTokenMismatch is returned when the supplied token does not
// match the one derived for the phone.
var ErrVerificationTokenMismatch = errors.New("verification token mismatch")

// GetOrdersByPhoneQueryHandler reads a guest's orders, gated by the
// phone-derived verification token.
type GetOrdersByPhoneQueryHandler struct {
	db     *gorm.DB
	secret string
}

// NewGetOrdersByPhoneQueryHandler creates a handler for guest order lookups.
// The secret must match the one used when issuing verification tokens.
func NewGetOrdersByPhoneQueryHandler(db *gorm.DB, secret string) GetOrdersByPhoneQueryHandler {
	return GetOrdersByPhoneQueryHandler{db: db, secret: secret}
}

// Handle returns every order placed under the phone, newest first.
// Returns ErrVerificationTokenMismatch when the token does not check out.
func (h GetOrdersByPhoneQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByPhoneQuery,
) ([]order.Projection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Token() != otp.VerificationToken(query.Phone(), h.secret) {
		return nil, ErrVerificationTokenMismatch
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE guest_phone = ?
		ORDER BY created_at DESC
	`, query.Phone().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orderRows = append(orderRows, row)
		ids = append(ids, row.id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := loadItemProjections(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	projections := make([]order.Projection, 0, len(orderRows))
	for _, row := range orderRows {
		projections = append(projections, row.toProjection(items[row.id]))
	}

	return projections, nil
}
