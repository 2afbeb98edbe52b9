package commands

import (
	"context"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// The aggregate decides whether the acting role may still cancel at the
// order's current status. Both the order room and the kitchen room receive
// the full updated projection, as the two audiences render it differently.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation and returns the updated projection.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.Projection, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Projection{}, err
	}

	if err = aggregate.Cancel(cmd.Reason(), cmd.Actor()); err != nil {
		return order.Projection{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, err
	}

	projection := aggregate.Projection()
	publishEvent(ctx, h.publisher, ports.OrderRoom(aggregate.ID()), ports.EventOrderCancelled, projection)
	publishEvent(ctx, h.publisher, ports.KitchenRoom(aggregate.KitchenID()), ports.EventOrderCancelled, projection)

	return projection, nil
}
