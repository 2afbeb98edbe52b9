package commands

import (
	"context"
	"log/slog"

	"ghostkitchen/internal/core/ports"
)

// publishEvent delivers a post-commit event on a best-effort basis.
// The transaction has already committed, so a failed publish is logged
// and swallowed rather than surfaced to the caller.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, room, event string, payload any) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, room, event, payload); err != nil {
		slog.Warn("failed to publish event",
			"event", event,
			"room", room,
			"error", err)
	}
}
