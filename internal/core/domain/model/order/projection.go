package order

import "time"

// ItemProjection is the wire shape of a line item snapshot.
type ItemProjection struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"priceSnapshot"`
}

// Projection is the order shape returned by every lifecycle operation and
// carried in NEW_ORDER / ORDER_CANCELLED event payloads. Timestamps are
// ISO8601 strings; eta is omitted when unset, etaNotes and deliveredAt are
// explicit nulls.
type Projection struct {
	ID          string           `json:"id"`
	OrderNumber string           `json:"orderNumber"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"createdAt"`
	Items       []ItemProjection `json:"items"`
	Total       float64          `json:"total"`
	Eta         *string          `json:"eta,omitempty"`
	EtaNotes    *string          `json:"etaNotes"`
	DeliveredAt *string          `json:"deliveredAt"`
}

// Projection maps the aggregate into its wire shape.
func (o *Order) Projection() Projection {
	items := make([]ItemProjection, len(o.items))
	for i, item := range o.items {
		items[i] = ItemProjection{
			ProductID:     item.ProductID().String(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			PriceSnapshot: item.PriceSnapshot(),
		}
	}

	return Projection{
		ID:          o.id.String(),
		OrderNumber: o.orderNumber.String(),
		Status:      o.status.String(),
		CreatedAt:   o.createdAt.UTC().Format(time.RFC3339),
		Items:       items,
		Total:       o.total,
		Eta:         formatTimePtr(o.eta),
		EtaNotes:    o.etaNotes,
		DeliveredAt: formatTimePtr(o.deliveredAt),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
