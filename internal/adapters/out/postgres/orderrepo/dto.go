// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Handles the conversion between the order aggregate and
// its relational representation, line items included.
package orderrepo

import (
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string    `gorm:"uniqueIndex"`
	KitchenID    uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Total        float64
	Status       int `gorm:"index"`
	GuestName    *string
	GuestPhone   *string `gorm:"index"`
	CreatedAt    time.Time
	Eta          *time.Time
	EtaNotes     *string
	CancelReason *string
	CancelledBy  int
	DeliveredAt  *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item snapshot of an order.
// Rows are written once at placement and never updated.
type OrderItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	Name          string
	Quantity      int
	PriceSnapshot float64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:       aggregate.ID().Bytes(),
			ProductID:     item.ProductID().Bytes(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			PriceSnapshot: item.PriceSnapshot(),
		})
	}

	var guestName, guestPhone *string
	if guest := aggregate.Guest(); guest != nil {
		name := guest.Name()
		phone := guest.Phone().String()
		guestName = &name
		guestPhone = &phone
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber().String(),
		KitchenID:    aggregate.KitchenID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Total:        aggregate.Total(),
		Status:       int(aggregate.Status()),
		GuestName:    guestName,
		GuestPhone:   guestPhone,
		CreatedAt:    aggregate.CreatedAt(),
		Eta:          aggregate.ETA(),
		EtaNotes:     aggregate.ETANotes(),
		CancelReason: aggregate.CancelReason(),
		CancelledBy:  int(aggregate.CancelledBy()),
		DeliveredAt:  aggregate.DeliveredAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO back into the order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	kitchenID, err := kernel.UUIDFromBytes(dto.KitchenID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Quantity, itemDTO.PriceSnapshot)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var guest *order.Guest
	if dto.GuestName != nil && dto.GuestPhone != nil {
		phone, phoneErr := kernel.NewPhone(*dto.GuestPhone)
		if phoneErr != nil {
			return nil, phoneErr
		}

		g, guestErr := order.NewGuest(*dto.GuestName, phone)
		if guestErr != nil {
			return nil, guestErr
		}
		guest = &g
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		kitchenID,
		restaurantID,
		items,
		dto.Total,
		order.Status(dto.Status),
		guest,
		dto.CreatedAt,
		dto.Eta,
		dto.EtaNotes,
		dto.CancelReason,
		order.ActorRole(dto.CancelledBy),
		dto.DeliveredAt,
	)
}
