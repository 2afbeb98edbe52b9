package queries

import (
	"context"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order projection.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle returns the order's projection, or an ObjectNotFoundError when no
// such order exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (order.Projection, error) {
	if err := query.Validate(); err != nil {
		return order.Projection{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return order.Projection{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return order.Projection{}, err
		}
		return order.Projection{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return order.Projection{}, err
	}

	items, err := loadItemProjections(ctx, h.db, []uuid.UUID{row.id})
	if err != nil {
		return order.Projection{}, err
	}

	return row.toProjection(items[row.id]), nil
}
