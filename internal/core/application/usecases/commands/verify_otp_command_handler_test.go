package commands_test

import (
	"testing"
	"time"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/domain/model/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestVerifyOTPCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone := testPhone(t)
	outstanding, err := otp.NewOTP(phone, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewVerifyOTPCommand(phone, outstanding.Code())
	require.NoError(t, err)

	repo := new(MockOTPRepository)
	uow := new(MockOTPUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OTPRepository").Return(repo).Once(),
		repo.On("GetByPhone", mock.Anything, phone).Return(outstanding, nil).Once(),
		repo.On("DeleteByPhone", mock.Anything, phone).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOTPUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOTPCommandHandler(factory, testSecret)
	token, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, otp.VerificationToken(phone, testSecret), token)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyOTPCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	phone := testPhone(t)
	outstanding, err := otp.NewOTP(phone, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewVerifyOTPCommand(phone, "not-the-code")
	require.NoError(t, err)

	repo := new(MockOTPRepository)
	uow := new(MockOTPUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OTPRepository").Return(repo).Once(),
		repo.On("GetByPhone", mock.Anything, phone).Return(outstanding, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOTPUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOTPCommandHandler(factory, testSecret)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, otp.ErrCodeMismatch)
	repo.AssertNotCalled(t, "DeleteByPhone", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRequestOTPCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone := testPhone(t)
	cmd, err := commands.NewRequestOTPCommand(phone)
	require.NoError(t, err)

	repo := new(MockOTPRepository)
	uow := new(MockOTPUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OTPRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*otp.OTP")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOTPUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestOTPCommandHandler(factory)
	code, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, code, 6)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeExpiredOTPsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPurgeExpiredOTPsCommand()

	repo := new(MockOTPRepository)
	uow := new(MockOTPUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OTPRepository").Return(repo).Once(),
		repo.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOTPUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeExpiredOTPsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
