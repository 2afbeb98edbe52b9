package commands

import (
	"context"
	"errors"

	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kitchen"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the signup email is already in use.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// SignupKitchenCommandHandler handles kitchen registration.
// Creates the kitchen and its owning user account in one transaction so a
// kitchen never exists without a login and vice versa.
type SignupKitchenCommandHandler struct {
	uowFactory SignupUoWFactory
}

// NewSignupKitchenCommandHandler creates a handler for kitchen signup.
func NewSignupKitchenCommandHandler(uowFactory SignupUoWFactory) SignupKitchenCommandHandler {
	return SignupKitchenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns ErrEmailAlreadyRegistered when the email is taken.
func (h *SignupKitchenCommandHandler) Handle(ctx context.Context, cmd SignupKitchenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := account.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	newKitchen, err := kitchen.NewKitchen(cmd.KitchenID(), cmd.KitchenName(), cmd.Location())
	if err != nil {
		return err
	}

	kitchenID := cmd.KitchenID()
	user, err := account.NewUser(cmd.UserID(), cmd.Email(), passwordHash, order.RoleKitchen, &kitchenID)
	if err != nil {
		return err
	}

	if err = uow.KitchenRepository().Add(ctx, newKitchen); err != nil {
		return err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
