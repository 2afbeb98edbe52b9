package commands

import (
	"context"
	"errors"
	"time"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/domain/services"
	"ghostkitchen/internal/core/ports"
)

// ErrRestaurantIsNotActive is returned when an order is placed against a
// restaurant that has been deactivated.
var ErrRestaurantIsNotActive = errors.New("restaurant is not active")

// PlaceOrderCommandHandler handles guest checkout.
// Resolves the restaurant, snapshots prices from its menu, persists the new
// order in Received status, and announces it to both the order room and the
// owning kitchen's room.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.Checkout
	publisher  ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   services.NewCheckout(),
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the projection of
// the created order. The NEW_ORDER event is published only after the
// transaction commits; a publish failure does not fail the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Projection, error) {
	if err := cmd.Validate(); err != nil {
		return order.Projection{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Projection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return order.Projection{}, err
	}
	if !rest.IsActive() {
		return order.Projection{}, ErrRestaurantIsNotActive
	}

	menu, err := uow.ProductRepository().GetAllByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return order.Projection{}, err
	}

	requests := make([]services.ItemRequest, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		requests = append(requests, services.ItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	items, err := h.checkout.BuildItems(requests, menu)
	if err != nil {
		return order.Projection{}, err
	}

	guest, err := order.NewGuest(cmd.GuestName(), cmd.GuestPhone())
	if err != nil {
		return order.Projection{}, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(), rest.KitchenID(), cmd.RestaurantID(), items, &guest, time.Now().UTC(),
	)
	if err != nil {
		return order.Projection{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, err
	}

	projection := placed.Projection()
	publishEvent(ctx, h.publisher, ports.OrderRoom(placed.ID()), ports.EventNewOrder, projection)
	publishEvent(ctx, h.publisher, ports.KitchenRoom(placed.KitchenID()), ports.EventNewOrder, projection)

	return projection, nil
}
