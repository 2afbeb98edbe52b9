// Package queries contains read-side operations.
// Query handlers go straight to the database and map rows into wire-shaped
// projections, bypassing the aggregates entirely.
package queries

import (
	"context"
	"database/sql"
	"time"

	"ghostkitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	order_number,
	status,
	total,
	created_at,
	eta,
	eta_notes,
	delivered_at
`

// orderRow is the flat shape scanned from the orders table.
type orderRow struct {
	id          uuid.UUID
	orderNumber string
	status      int
	total       float64
	createdAt   time.Time
	eta         sql.NullTime
	etaNotes    sql.NullString
	deliveredAt sql.NullTime
}

func scanOrderRow(rows *sql.Rows) (orderRow, error) {
	var row orderRow
	err := rows.Scan(
		&row.id,
		&row.orderNumber,
		&row.status,
		&row.total,
		&row.createdAt,
		&row.eta,
		&row.etaNotes,
		&row.deliveredAt,
	)
	return row, err
}

func (r orderRow) toProjection(items []order.ItemProjection) order.Projection {
	if items == nil {
		items = make([]order.ItemProjection, 0)
	}

	return order.Projection{
		ID:          r.id.String(),
		OrderNumber: r.orderNumber,
		Status:      order.Status(r.status).String(),
		CreatedAt:   r.createdAt.UTC().Format(time.RFC3339),
		Items:       items,
		Total:       r.total,
		Eta:         formatNullTime(r.eta),
		EtaNotes:    nullStringPtr(r.etaNotes),
		DeliveredAt: formatNullTime(r.deliveredAt),
	}
}

func formatNullTime(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.UTC().Format(time.RFC3339)
	return &s
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// loadItemProjections fetches line items for a set of orders and groups them
// by order id.
func loadItemProjections(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]order.ItemProjection, error) {
	grouped := make(map[uuid.UUID][]order.ItemProjection, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			quantity,
			price_snapshot
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			item      order.ItemProjection
		)
		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Quantity, &item.PriceSnapshot); err != nil {
			return nil, err
		}
		item.ProductID = productID.String()
		grouped[orderID] = append(grouped[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}
