package commands

import (
	"context"
	"time"

	"ghostkitchen/internal/core/domain/model/otp"
)

// VerifyOTPCommandHandler handles one-time code verification.
// A successfully used code is consumed; the caller receives a verification
// token that later authorizes phone-scoped order lookups.
type VerifyOTPCommandHandler struct {
	uowFactory OTPUoWFactory
	secret     string
}

// NewVerifyOTPCommandHandler creates a handler for code verification.
// The secret is the server-side key that verification tokens are derived from.
func NewVerifyOTPCommandHandler(uowFactory OTPUoWFactory, secret string) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{
		uowFactory: uowFactory,
		secret:     secret,
	}
}

// Handle verifies the submitted code and returns the verification token.
// Returns otp.ErrCodeMismatch or otp.ErrCodeExpired on a bad code, and a
// not-found error when no code is outstanding for the phone.
func (h *VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	otpRepo := uow.OTPRepository()
	outstanding, err := otpRepo.GetByPhone(ctx, cmd.Phone())
	if err != nil {
		return "", err
	}

	if err = outstanding.Verify(cmd.Code(), time.Now().UTC()); err != nil {
		return "", err
	}

	if err = otpRepo.DeleteByPhone(ctx, cmd.Phone()); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return otp.VerificationToken(cmd.Phone(), h.secret), nil
}
