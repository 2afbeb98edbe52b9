// Package http exposes the platform's REST API. It binds requests into
// commands and queries, resolves the caller's identity from bearer tokens,
// and maps domain failures onto HTTP status codes.
package http

import (
	"net/http"

	"ghostkitchen/internal/core/application/usecases/commands"
	"ghostkitchen/internal/core/application/usecases/queries"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	updateOrderETAHandler     commands.UpdateOrderETACommandHandler
	signupKitchenHandler      commands.SignupKitchenCommandHandler
	createRestaurantHandler   commands.CreateRestaurantCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	updateProductHandler      commands.UpdateProductCommandHandler
	discontinueProductHandler commands.DiscontinueProductCommandHandler
	requestOTPHandler         commands.RequestOTPCommandHandler
	verifyOTPHandler          commands.VerifyOTPCommandHandler

	// Query handlers
	loginHandler                 queries.LoginQueryHandler
	getOrderByIDHandler          queries.GetOrderByIDQueryHandler
	getOrdersByPhoneHandler      queries.GetOrdersByPhoneQueryHandler
	getKitchenActiveHandler      queries.GetKitchenActiveOrdersQueryHandler
	getKitchenHistoryHandler     queries.GetKitchenHistoryOrdersQueryHandler
	getKitchenRestaurantsHandler queries.GetRestaurantsByKitchenQueryHandler
	getActiveRestaurantsHandler  queries.GetActiveRestaurantsQueryHandler
	getProductsHandler           queries.GetProductsByRestaurantQueryHandler

	tokenIssuer TokenIssuer
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderETAHandler commands.UpdateOrderETACommandHandler,
	signupKitchenHandler commands.SignupKitchenCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	discontinueProductHandler commands.DiscontinueProductCommandHandler,
	requestOTPHandler commands.RequestOTPCommandHandler,
	verifyOTPHandler commands.VerifyOTPCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByPhoneHandler queries.GetOrdersByPhoneQueryHandler,
	getKitchenActiveHandler queries.GetKitchenActiveOrdersQueryHandler,
	getKitchenHistoryHandler queries.GetKitchenHistoryOrdersQueryHandler,
	getKitchenRestaurantsHandler queries.GetRestaurantsByKitchenQueryHandler,
	getActiveRestaurantsHandler queries.GetActiveRestaurantsQueryHandler,
	getProductsHandler queries.GetProductsByRestaurantQueryHandler,
	tokenIssuer TokenIssuer,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		cancelOrderHandler:           cancelOrderHandler,
		updateOrderETAHandler:        updateOrderETAHandler,
		signupKitchenHandler:         signupKitchenHandler,
		createRestaurantHandler:      createRestaurantHandler,
		createProductHandler:         createProductHandler,
		updateProductHandler:         updateProductHandler,
		discontinueProductHandler:    discontinueProductHandler,
		requestOTPHandler:            requestOTPHandler,
		verifyOTPHandler:             verifyOTPHandler,
		loginHandler:                 loginHandler,
		getOrderByIDHandler:          getOrderByIDHandler,
		getOrdersByPhoneHandler:      getOrdersByPhoneHandler,
		getKitchenActiveHandler:      getKitchenActiveHandler,
		getKitchenHistoryHandler:     getKitchenHistoryHandler,
		getKitchenRestaurantsHandler: getKitchenRestaurantsHandler,
		getActiveRestaurantsHandler:  getActiveRestaurantsHandler,
		getProductsHandler:           getProductsHandler,
		tokenIssuer:                  tokenIssuer,
	}
}

// SignupKitchen handles POST /api/v1/auth/signup - registers a kitchen account.
func (s *Server) SignupKitchen(ctx echo.Context) error {
	var req servers.SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	userID := kernel.NewUUID()
	kitchenID := kernel.NewUUID()

	cmd, err := commands.NewSignupKitchenCommand(
		userID, kitchenID, string(req.Email), req.Password, req.KitchenName, req.Location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid signup data: "+err.Error()))
	}

	if handleErr := s.signupKitchenHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	kitchenIDStr := kitchenID.String()
	token, err := s.tokenIssuer.Issue(userID.String(), order.RoleKitchen.String(), &kitchenIDStr)
	if err != nil {
		return respondError(ctx, err)
	}

	kitchenUUID := kitchenID.Bytes()
	return ctx.JSON(http.StatusCreated, servers.AuthResponse{
		Token:     token,
		UserId:    userID.Bytes(),
		Role:      order.RoleKitchen.String(),
		KitchenId: &kitchenUUID,
	})
}

// Login handles POST /api/v1/auth/login - authenticates a kitchen account.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	query, err := queries.NewLoginQuery(string(req.Email), req.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid login data: "+err.Error()))
	}

	identity, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokenIssuer.Issue(identity.UserID, identity.Role, identity.KitchenID)
	if err != nil {
		return respondError(ctx, err)
	}

	userUUID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := servers.AuthResponse{
		Token:  token,
		UserId: userUUID,
		Role:   identity.Role,
	}
	if identity.KitchenID != nil {
		kitchenUUID, parseErr := uuid.Parse(*identity.KitchenID)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		response.KitchenId = &kitchenUUID
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestOtp handles POST /api/v1/auth/otp/request - issues a one-time code.
// The code travels out of band; the HTTP response never carries it.
func (s *Server) RequestOtp(ctx echo.Context) error {
	var req servers.OtpRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid phone number: "+err.Error()))
	}

	cmd, err := commands.NewRequestOTPCommand(phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	if _, handleErr := s.requestOTPHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyOtp handles POST /api/v1/auth/otp/verify - exchanges a one-time code
// for a phone verification token.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	var req servers.OtpVerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid phone number: "+err.Error()))
	}

	cmd, err := commands.NewVerifyOTPCommand(phone, req.Code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	token, handleErr := s.verifyOTPHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OtpVerifyResponse{VerificationToken: token})
}

// PlaceOrder handles POST /api/v1/orders - places a guest order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid restaurant id"))
	}

	phone, err := kernel.NewPhone(req.GuestPhone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid phone number: "+err.Error()))
	}

	lines := make([]commands.OrderLine, len(req.Items))
	for i, item := range req.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductId.String())
		if lineErr != nil {
			return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid product id"))
		}
		lines[i] = commands.OrderLine{ProductID: productID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), restaurantID, lines, req.GuestName, phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order data: "+err.Error()))
	}

	projection, handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, projection)
}

// GetOrder handles GET /api/v1/orders/{orderId} - fetches one order.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order id"))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	projection, handleErr := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, projection)
}

// GetOrdersByPhone handles GET /api/v1/orders - lists orders placed from a
// verified phone number.
func (s *Server) GetOrdersByPhone(ctx echo.Context, params servers.GetOrdersByPhoneParams) error {
	phone, err := kernel.NewPhone(params.Phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid phone number: "+err.Error()))
	}

	query, err := queries.NewGetOrdersByPhoneQuery(phone, params.Token)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	orders, handleErr := s.getOrdersByPhoneHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - advances
// the order through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireKitchen(ctx, ""); err != nil {
		return err
	}

	var req servers.StatusUpdate
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order id"))
	}

	status, err := order.StatusFromString(string(req.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	projection, handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, projection)
}

// UpdateOrderEta handles PATCH /api/v1/orders/{orderId}/eta - updates the
// delivery estimate.
func (s *Server) UpdateOrderEta(ctx echo.Context, orderId servers.OrderId) error {
	if _, err := requireKitchen(ctx, ""); err != nil {
		return err
	}

	var req servers.EtaUpdate
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order id"))
	}

	cmd, err := commands.NewUpdateOrderETACommand(orderID, req.Eta, req.Note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	projection, handleErr := s.updateOrderETAHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, projection)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
// Anonymous callers cancel as customers; staff tokens widen the allowed window.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	var req servers.CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid order id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, actorRole(ctx))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	projection, handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, projection)
}

// GetRestaurants handles GET /api/v1/restaurants - lists active restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	restaurants, err := s.getActiveRestaurantsHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveRestaurantsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant handles POST /api/v1/restaurants - creates a restaurant
// under the caller's kitchen.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	claims, err := requireKitchen(ctx, "")
	if err != nil {
		return err
	}

	kitchenID, err := kitchenScope(claims)
	if err != nil {
		return err
	}

	var req servers.NewRestaurant
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), kitchenID, req.Name, req.Cuisines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid restaurant data: "+err.Error()))
	}

	if handleErr := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetKitchenRestaurants handles GET /api/v1/kitchens/{kitchenId}/restaurants.
func (s *Server) GetKitchenRestaurants(ctx echo.Context, kitchenId servers.KitchenId) error {
	if _, err := requireKitchen(ctx, kitchenId.String()); err != nil {
		return err
	}

	kitchenID, err := kernel.UUIDFromString(kitchenId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid kitchen id"))
	}

	query, err := queries.NewGetRestaurantsByKitchenQuery(kitchenID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	restaurants, handleErr := s.getKitchenRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, restaurants)
}

// GetKitchenActiveOrders handles GET /api/v1/kitchens/{kitchenId}/orders/active.
func (s *Server) GetKitchenActiveOrders(ctx echo.Context, kitchenId servers.KitchenId) error {
	if _, err := requireKitchen(ctx, kitchenId.String()); err != nil {
		return err
	}

	kitchenID, err := kernel.UUIDFromString(kitchenId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid kitchen id"))
	}

	query, err := queries.NewGetKitchenActiveOrdersQuery(kitchenID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	orders, handleErr := s.getKitchenActiveHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetKitchenHistoryOrders handles GET /api/v1/kitchens/{kitchenId}/orders/history.
func (s *Server) GetKitchenHistoryOrders(ctx echo.Context, kitchenId servers.KitchenId) error {
	if _, err := requireKitchen(ctx, kitchenId.String()); err != nil {
		return err
	}

	kitchenID, err := kernel.UUIDFromString(kitchenId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid kitchen id"))
	}

	query, err := queries.NewGetKitchenHistoryOrdersQuery(kitchenID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	orders, handleErr := s.getKitchenHistoryHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetRestaurantProducts handles GET /api/v1/restaurants/{restaurantId}/products.
func (s *Server) GetRestaurantProducts(ctx echo.Context, restaurantId servers.RestaurantId) error {
	restaurantID, err := kernel.UUIDFromString(restaurantId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid restaurant id"))
	}

	query, err := queries.NewGetProductsByRestaurantQuery(restaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	products, handleErr := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/v1/products - adds a product to a menu.
func (s *Server) CreateProduct(ctx echo.Context) error {
	claims, err := requireKitchen(ctx, "")
	if err != nil {
		return err
	}

	kitchenID, err := kitchenScope(claims)
	if err != nil {
		return err
	}

	var req servers.NewProduct
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid restaurant id"))
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), restaurantID, kitchenID, req.Name, req.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid product data: "+err.Error()))
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateProduct handles PUT /api/v1/products/{productId} - renames or
// reprices a product.
func (s *Server) UpdateProduct(ctx echo.Context, productId servers.ProductId) error {
	claims, err := requireKitchen(ctx, "")
	if err != nil {
		return err
	}

	kitchenID, err := kitchenScope(claims)
	if err != nil {
		return err
	}

	var req servers.ProductUpdate
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid request body"))
	}

	productID, err := kernel.UUIDFromString(productId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid product id"))
	}

	cmd, err := commands.NewUpdateProductCommand(productID, kitchenID, req.Name, req.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid product data: "+err.Error()))
	}

	if handleErr := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DiscontinueProduct handles DELETE /api/v1/products/{productId} - takes a
// product off the menu without deleting its order history.
func (s *Server) DiscontinueProduct(ctx echo.Context, productId servers.ProductId) error {
	claims, err := requireKitchen(ctx, "")
	if err != nil {
		return err
	}

	kitchenID, err := kitchenScope(claims)
	if err != nil {
		return err
	}

	productID, err := kernel.UUIDFromString(productId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Invalid product id"))
	}

	cmd, err := commands.NewDiscontinueProductCommand(productID, kitchenID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	}

	if handleErr := s.discontinueProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// kitchenScope returns the tenant id carried by a kitchen token. Menu and
// restaurant mutations always run against the caller's own kitchen.
func kitchenScope(claims *Claims) (kernel.UUID, error) {
	if claims.KitchenID == nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "Kitchen scope required")
	}
	kitchenID, err := kernel.UUIDFromString(*claims.KitchenID)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "Kitchen scope required")
	}
	return kitchenID, nil
}
