package cmd

import (
	"ghostkitchen/internal/adapters/out/postgres"
	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/application/usecases/queries"
	"ghostkitchen/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	otpSecret  string
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		otpSecret:  config.OTPSecret,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderETACommandHandler() commands.UpdateOrderETACommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderETACommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSignupKitchenCommandHandler() commands.SignupKitchenCommandHandler {
	var f commands.SignupUoWFactory = FuncSignupUoWFactory(func() commands.SignupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignupKitchenCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDiscontinueProductCommandHandler() commands.DiscontinueProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDiscontinueProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestOTPCommandHandler() commands.RequestOTPCommandHandler {
	var f commands.OTPUoWFactory = FuncOTPUoWFactory(func() commands.OTPUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestOTPCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	var f commands.OTPUoWFactory = FuncOTPUoWFactory(func() commands.OTPUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOTPCommandHandler(f, c.otpSecret)
}

func (c *CompositionRoot) CreatePurgeExpiredOTPsCommandHandler() commands.PurgeExpiredOTPsCommandHandler {
	var f commands.OTPUoWFactory = FuncOTPUoWFactory(func() commands.OTPUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredOTPsCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByPhoneQueryHandler() queries.GetOrdersByPhoneQueryHandler {
	return queries.NewGetOrdersByPhoneQueryHandler(c.gormDB, c.otpSecret)
}

func (c *CompositionRoot) CreateGetKitchenActiveOrdersQueryHandler() queries.GetKitchenActiveOrdersQueryHandler {
	return queries.NewGetKitchenActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenHistoryOrdersQueryHandler() queries.GetKitchenHistoryOrdersQueryHandler {
	return queries.NewGetKitchenHistoryOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsByKitchenQueryHandler() queries.GetRestaurantsByKitchenQueryHandler {
	return queries.NewGetRestaurantsByKitchenQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRestaurantsQueryHandler() queries.GetActiveRestaurantsQueryHandler {
	return queries.NewGetActiveRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsByRestaurantQueryHandler() queries.GetProductsByRestaurantQueryHandler {
	return queries.NewGetProductsByRestaurantQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncSignupUoWFactory func() commands.SignupUoW

func (f FuncSignupUoWFactory) Create() commands.SignupUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOTPUoWFactory func() commands.OTPUoW

func (f FuncOTPUoWFactory) Create() commands.OTPUoW {
	return f()
}
