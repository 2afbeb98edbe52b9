package commands

import (
	"context"
	"time"

	"ghostkitchen/internal/core/domain/model/otp"
)

// RequestOTPCommandHandler handles issuing one-time codes.
// A phone has at most one outstanding code; requesting again replaces the
// previous one. Delivery of the code (SMS or otherwise) is left to the
// caller, which receives the issued code.
type RequestOTPCommandHandler struct {
	uowFactory OTPUoWFactory
}

// NewRequestOTPCommandHandler creates a handler for code issuance.
func NewRequestOTPCommandHandler(uowFactory OTPUoWFactory) RequestOTPCommandHandler {
	return RequestOTPCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle issues a fresh code for the phone and returns it.
func (h *RequestOTPCommandHandler) Handle(ctx context.Context, cmd RequestOTPCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	code, err := otp.NewOTP(cmd.Phone(), time.Now().UTC())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OTPRepository().Upsert(ctx, code); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code.Code(), nil
}
