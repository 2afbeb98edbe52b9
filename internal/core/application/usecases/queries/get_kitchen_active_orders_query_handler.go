package queries

import (
	"context"

	"ghostkitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenActiveOrdersQueryHandler reads a kitchen's in-flight orders.
type GetKitchenActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetKitchenActiveOrdersQueryHandler(db *gorm.DB) GetKitchenActiveOrdersQueryHandler {
	return GetKitchenActiveOrdersQueryHandler{db: db}
}

// Handle returns every non-terminal order of the kitchen, newest first.
func (h GetKitchenActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenActiveOrdersQuery,
) ([]order.Projection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE kitchen_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY created_at DESC
	`, query.KitchenID().Bytes(), order.Delivered, order.Cancelled).Rows()
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
