package commands

import (
	"context"
	"log/slog"
	"time"
)

// PurgeExpiredOTPsCommandHandler removes stale one-time codes.
type PurgeExpiredOTPsCommandHandler struct {
	uowFactory OTPUoWFactory
}

// NewPurgeExpiredOTPsCommandHandler creates a handler for code purging.
func NewPurgeExpiredOTPsCommandHandler(uowFactory OTPUoWFactory) PurgeExpiredOTPsCommandHandler {
	return PurgeExpiredOTPsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every code that expired before now.
func (h *PurgeExpiredOTPsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredOTPsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OTPRepository().DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if removed > 0 {
		slog.Info("purged expired one-time codes", "count", removed)
	}

	return nil
}
