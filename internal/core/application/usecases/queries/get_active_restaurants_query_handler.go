package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveRestaurantsQueryHandler reads the public restaurant listing.
type GetActiveRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRestaurantsQueryHandler creates a handler for the public listing.
func NewGetActiveRestaurantsQueryHandler(db *gorm.DB) GetActiveRestaurantsQueryHandler {
	return GetActiveRestaurantsQueryHandler{db: db}
}

// Handle returns every active restaurant, ordered by name.
func (h GetActiveRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRestaurantsQuery,
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
		WHERE is_active
		ORDER BY name
	`).Rows()
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
