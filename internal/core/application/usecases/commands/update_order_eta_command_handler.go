package commands

import (
	"context"
	"time"

	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/core/ports"
)

// UpdateOrderETACommandHandler handles revised delivery estimates.
// Overwrites both the ETA and its note unconditionally and notifies the
// order's room only.
type UpdateOrderETACommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderETACommandHandler creates a handler for ETA updates.
func NewUpdateOrderETACommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderETACommandHandler {
	return UpdateOrderETACommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ETA update and returns the updated projection.
func (h *UpdateOrderETACommandHandler) Handle(ctx context.Context, cmd UpdateOrderETACommand) (order.Projection, error) {
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

	aggregate.SetETA(cmd.ETA(), cmd.Note())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, err
	}

	projection := aggregate.Projection()
	publishEvent(ctx, h.publisher, ports.OrderRoom(aggregate.ID()), ports.EventETAUpdated,
		ports.ETAPayload{
			OrderID: aggregate.ID().String(),
			ETA:     cmd.ETA().UTC().Format(time.RFC3339),
			Note:    cmd.Note(),
		})

	return projection, nil
}
