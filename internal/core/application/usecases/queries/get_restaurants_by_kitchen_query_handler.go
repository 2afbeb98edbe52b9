package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetRestaurantsByKitchenQueryHandler reads a kitchen's restaurants.
type GetRestaurantsByKitchenQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsByKitchenQueryHandler creates a handler for kitchen restaurant listings.
func NewGetRestaurantsByKitchenQueryHandler(db *gorm.DB) GetRestaurantsByKitchenQueryHandler {
	return GetRestaurantsByKitchenQueryHandler{db: db}
}

// Handle returns every restaurant belonging to the kitchen.
func (h GetRestaurantsByKitchenQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsByKitchenQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kitchen_id,
			name,
			cuisines,
			is_active
		FROM restaurants
		WHERE kitchen_id = ?
		ORDER BY name
	`, query.KitchenID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			kitchenID uuid.UUID
			resp      RestaurantResponse
			cuisines  pq.StringArray
		)
		if err = rows.Scan(&id, &kitchenID, &resp.Name, &cuisines, &resp.IsActive); err != nil {
			return nil, err
		}
		resp.ID = id.String()
		resp.KitchenID = kitchenID.String()
		resp.Cuisines = cuisines
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
