package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsByRestaurantQueryHandler reads a restaurant's available menu.
type GetProductsByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsByRestaurantQueryHandler creates a handler for menu queries.
func NewGetProductsByRestaurantQueryHandler(db *gorm.DB) GetProductsByRestaurantQueryHandler {
	return GetProductsByRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant's available products, ordered by name.
func (h GetProductsByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetProductsByRestaurantQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			price
		FROM products
		WHERE restaurant_id = ?
		  AND is_available
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			resp         ProductResponse
		)
		if err = rows.Scan(&id, &restaurantID, &resp.Name, &resp.Price); err != nil {
			return nil, err
		}
		resp.ID = id.String()
		resp.RestaurantID = restaurantID.String()
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
