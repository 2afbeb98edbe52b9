package commands_test

import (
	"testing"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Burger Cloud", []string{"american", "burgers"},
	)
	require.NoError(t, err)

	cuisineRepo := new(MockCuisineRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CuisineRepository").Return(cuisineRepo).Once(),
		cuisineRepo.On("GetAllActiveNames", mock.Anything).
			Return([]string{"american", "burgers", "thai"}, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Add", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	restRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRestaurantCommandHandler_Handle_UnknownCuisine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Burger Cloud", []string{"martian"},
	)
	require.NoError(t, err)

	cuisineRepo := new(MockCuisineRepository)
	uow := new(MockRestaurantUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CuisineRepository").Return(cuisineRepo).Once()
	cuisineRepo.On("GetAllActiveNames", mock.Anything).Return([]string{"american"}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestCreateRestaurantCommand_RequiresCuisines(t *testing.T) {
	_, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), kernel.NewUUID(), "Burger Cloud", nil)
	require.ErrorIs(t, err, commands.ErrCuisinesAreRequired)
}
