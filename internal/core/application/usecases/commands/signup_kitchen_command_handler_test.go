package commands_test

import (
	"testing"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/domain/model/account"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signupCommand(t *testing.T) commands.SignupKitchenCommand {
	t.Helper()
	cmd, err := commands.NewSignupKitchenCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"owner@cloudkitchen.io", "s3cret-pass", "Cloud Kitchen North", nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestSignupKitchenCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := signupCommand(t)

	userRepo := new(MockUserRepository)
	kitchenRepo := new(MockKitchenRepository)
	uow := new(MockSignupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "owner@cloudkitchen.io").
			Return(nil, errs.NewObjectNotFoundError("email", "owner@cloudkitchen.io")).Once(),
		uow.On("KitchenRepository").Return(kitchenRepo).Once(),
		kitchenRepo.On("Add", mock.Anything, mock.AnythingOfType("*kitchen.Kitchen")).Return(nil).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSignupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignupKitchenCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	userRepo.AssertExpectations(t)
	kitchenRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignupKitchenCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd := signupCommand(t)

	kitchenID := kernel.NewUUID()
	hash, err := account.HashPassword("whatever1")
	require.NoError(t, err)
	existing, err := account.NewUser(kernel.NewUUID(), "owner@cloudkitchen.io", hash, order.RoleKitchen, &kitchenID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockSignupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("GetByEmail", mock.Anything, "owner@cloudkitchen.io").Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSignupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignupKitchenCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	uow.AssertExpectations(t)
}

func TestSignupKitchenCommand_Validation(t *testing.T) {
	t.Run("rejects short password", func(t *testing.T) {
		_, err := commands.NewSignupKitchenCommand(
			kernel.NewUUID(), kernel.NewUUID(), "owner@cloudkitchen.io", "short", "Kitchen", nil,
		)
		require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := commands.NewSignupKitchenCommand(
			kernel.NewUUID(), kernel.NewUUID(), "not-an-email", "s3cret-pass", "Kitchen", nil,
		)
		require.ErrorIs(t, err, commands.ErrEmailIsInvalid)
	})

	t.Run("lowercases the email", func(t *testing.T) {
		cmd, err := commands.NewSignupKitchenCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Owner@CloudKitchen.IO", "s3cret-pass", "Kitchen", nil,
		)
		require.NoError(t, err)
		require.Equal(t, "owner@cloudkitchen.io", cmd.Email())
	})
}
