package http

import (
	"fmt"
	"net/http"
	"time"

	"ghostkitchen/internal/adapters/out/redisbus"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval paces SSE keepalive comments so intermediaries do not
// drop idle connections.
const heartbeatInterval = 15 * time.Second

// StreamHandler serves the live order event streams over Server-Sent Events.
// Joining a room requires only knowing its id; customers hold their order id
// from placement and kitchen dashboards hold their kitchen id.
type StreamHandler struct {
	subscriber *redisbus.Subscriber
}

// NewStreamHandler creates the SSE handler over the given subscriber.
func NewStreamHandler(subscriber *redisbus.Subscriber) *StreamHandler {
	return &StreamHandler{subscriber: subscriber}
}

// Register mounts the stream routes on the API group.
func (h *StreamHandler) Register(router *echo.Group) {
	router.GET("/streams/orders/:orderId", h.OrderStream)
	router.GET("/streams/kitchens/:kitchenId", h.KitchenStream)
}

// OrderStream handles GET /api/v1/streams/orders/{orderId} - one order's
// lifecycle events.
func (h *StreamHandler) OrderStream(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order id"))
	}

	return h.stream(ctx, ports.OrderRoom(orderID))
}

// KitchenStream handles GET /api/v1/streams/kitchens/{kitchenId} - every
// order event of one kitchen.
func (h *StreamHandler) KitchenStream(ctx echo.Context) error {
	kitchenID, err := kernel.UUIDFromString(ctx.Param("kitchenId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid kitchen id"))
	}

	return h.stream(ctx, ports.KitchenRoom(kitchenID))
}

func (h *StreamHandler) stream(ctx echo.Context, room string) error {
	requestCtx := ctx.Request().Context()

	events, err := h.subscriber.Subscribe(requestCtx, room)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError,
			errorBody(http.StatusInternalServerError, "Failed to join stream"))
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-requestCtx.Done():
			return nil

		case <-heartbeat.C:
			if _, err := fmt.Fprint(response, ": ping\n\n"); err != nil {
				return nil
			}
			response.Flush()

		case envelope, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(response, "event: %s\ndata: %s\n\n",
				envelope.Event, envelope.Payload); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}
