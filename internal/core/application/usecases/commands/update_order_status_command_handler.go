package commands

import (
	"context"
	"time"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles status advances along the delivery
// pipeline. Loads the order, applies the transition, persists it, and tells
// the order's room about the change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status advances.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status advance and returns the updated projection.
// The ORDER_UPDATED event goes to the order room only: kitchen dashboards
// already initiated the change themselves.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (order.Projection, error) {
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

	if err = aggregate.AdvanceTo(cmd.Status(), time.Now().UTC()); err != nil {
		return order.Projection{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, err
	}

	projection := aggregate.Projection()
	publishEvent(ctx, h.publisher, ports.OrderRoom(aggregate.ID()), ports.EventOrderUpdated,
		ports.StatusChangedPayload{
			OrderID: aggregate.ID().String(),
			Status:  projection.Status,
		})

	return projection, nil
}
