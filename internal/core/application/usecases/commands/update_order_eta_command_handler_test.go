package commands_test

import (
	"testing"
	"time"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderETACommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := placedOrder(t)
	eta := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	note := "running late"

	cmd, err := commands.NewUpdateOrderETACommand(existing.ID(), eta, &note)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	// ETA updates go to the order room only
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, ports.OrderRoom(existing.ID()), ports.EventETAUpdated,
		ports.ETAPayload{
			OrderID: existing.ID().String(),
			ETA:     "2024-06-01T13:00:00Z",
			Note:    &note,
		}).Return(nil).Once()

	h := commands.NewUpdateOrderETACommandHandler(factory, publisher)
	projection, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, projection.Eta)
	assert.Equal(t, "2024-06-01T13:00:00Z", *projection.Eta)
	require.NotNil(t, projection.EtaNotes)
	assert.Equal(t, note, *projection.EtaNotes)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderETACommandHandler_Handle_NilNoteClearsPrevious(t *testing.T) {
	ctx := t.Context()
	existing := placedOrder(t)
	oldNote := "old note"
	existing.SetETA(time.Now().UTC(), &oldNote)

	eta := time.Date(2024, 6, 1, 13, 30, 0, 0, time.UTC)
	cmd, err := commands.NewUpdateOrderETACommand(existing.ID(), eta, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewUpdateOrderETACommandHandler(factory, publisher)
	projection, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, projection.EtaNotes)
}

func TestUpdateOrderETACommand_RequiresETA(t *testing.T) {
	_, err := commands.NewUpdateOrderETACommand(kernel.NewUUID(), time.Time{}, nil)
	require.ErrorIs(t, err, commands.ErrETAIsRequired)
}
