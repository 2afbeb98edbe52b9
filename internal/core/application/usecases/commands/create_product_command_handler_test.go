package commands_test

import (
	"testing"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	rest := testRestaurant(t, kitchenID)

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), rest.ID(), kitchenID, "Smash Burger", 9.50,
	)
	require.NoError(t, err)

	restRepo := new(MockRestaurantRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()
	rest := testRestaurant(t, kernel.NewUUID())

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), rest.ID(), kernel.NewUUID(), "Smash Burger", 9.50,
	)
	require.NoError(t, err)

	restRepo := new(MockRestaurantRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restRepo).Once()
	restRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRestaurantNotOwned)
	uow.AssertExpectations(t)
}

func TestDiscontinueProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	rest := testRestaurant(t, kitchenID)
	burger, err := product.NewProduct(kernel.NewUUID(), rest.ID(), "Smash Burger", 9.50)
	require.NoError(t, err)

	cmd, err := commands.NewDiscontinueProductCommand(burger.ID(), kitchenID)
	require.NoError(t, err)

	restRepo := new(MockRestaurantRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, burger.ID()).Return(burger, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		productRepo.On("Update", mock.Anything, burger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDiscontinueProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, burger.IsAvailable())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	rest := testRestaurant(t, kitchenID)
	burger, err := product.NewProduct(kernel.NewUUID(), rest.ID(), "Smash Burger", 9.50)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProductCommand(burger.ID(), kitchenID, "Double Smash", 12.00)
	require.NoError(t, err)

	restRepo := new(MockRestaurantRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, burger.ID()).Return(burger, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		productRepo.On("Update", mock.Anything, burger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Double Smash", burger.Name())
	assert.Equal(t, 12.00, burger.Price())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
