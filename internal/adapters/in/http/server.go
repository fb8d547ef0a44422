// Package http is the inbound REST adapter. It binds requests, invokes the
// application's command and query handlers and maps their errors onto HTTP
// statuses. No business rules live here.
package http

import (
	"net/http"
	"strconv"

	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	requestPasswordResetHandler commands.RequestPasswordResetCommandHandler
	resetPasswordHandler        commands.ResetPasswordCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	createReviewHandler         commands.CreateReviewCommandHandler

	// Query handlers
	authenticateUserHandler  queries.AuthenticateUserQueryHandler
	getItemsHandler          queries.GetItemsQueryHandler
	getItemHandler           queries.GetItemQueryHandler
	getItemCategoriesHandler queries.GetItemCategoriesQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getItemReviewsHandler    queries.GetItemReviewsQueryHandler
	getUserReviewsHandler    queries.GetUserReviewsQueryHandler
	getAllReviewsHandler     queries.GetAllReviewsQueryHandler

	tokens ports.TokenService
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	requestPasswordResetHandler commands.RequestPasswordResetCommandHandler,
	resetPasswordHandler commands.ResetPasswordCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createReviewHandler commands.CreateReviewCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
	getItemCategoriesHandler queries.GetItemCategoriesQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getItemReviewsHandler queries.GetItemReviewsQueryHandler,
	getUserReviewsHandler queries.GetUserReviewsQueryHandler,
	getAllReviewsHandler queries.GetAllReviewsQueryHandler,
	tokens ports.TokenService,
) *Server {
	return &Server{
		registerUserHandler:         registerUserHandler,
		requestPasswordResetHandler: requestPasswordResetHandler,
		resetPasswordHandler:        resetPasswordHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		createReviewHandler:         createReviewHandler,
		authenticateUserHandler:     authenticateUserHandler,
		getItemsHandler:             getItemsHandler,
		getItemHandler:              getItemHandler,
		getItemCategoriesHandler:    getItemCategoriesHandler,
		getOrderHandler:             getOrderHandler,
		getUserOrdersHandler:        getUserOrdersHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getItemReviewsHandler:       getItemReviewsHandler,
		getUserReviewsHandler:       getUserReviewsHandler,
		getAllReviewsHandler:        getAllReviewsHandler,
		tokens:                      tokens,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	session := RequireSession(s.tokens)

	auth := api.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/password/forgot", s.ForgotPassword)
	auth.POST("/password/reset", s.ResetPassword)

	items := api.Group("/items")
	items.GET("", s.GetItems)
	items.GET("/categories/list", s.GetItemCategories)
	items.GET("/:id", s.GetItem)

	orders := api.Group("/orders", session)
	orders.POST("", s.CreateOrder)
	orders.GET("/all", s.GetAllOrders)
	orders.GET("/user/:id", s.GetUserOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)

	reviews := api.Group("/reviews")
	reviews.POST("", s.CreateReview, session)
	reviews.GET("/all", s.GetAllReviews)
	reviews.GET("/item/:id", s.GetItemReviews)
	reviews.GET("/user/:id", s.GetUserReviews, session)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/auth/register - creates a customer account.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	u, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(u))
}

// Login handles POST /api/auth/login - verifies credentials and issues a
// session token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User: userResponse{
			ID:    result.UserID.Bytes(),
			Name:  result.Name,
			Email: result.Email,
			Role:  result.Role.String(),
		},
	})
}

// ForgotPassword handles POST /api/auth/password/forgot. The response is
// identical whether or not the email is registered.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req forgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestPasswordResetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: "if the address is registered, a reset link has been sent",
	})
}

// ResetPassword handles POST /api/auth/password/reset.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req resetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(req.Token, req.NewPassword)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resetPasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// GetItems handles GET /api/items - lists catalog items with an optional
// category filter and offset/limit paging.
func (s *Server) GetItems(ctx echo.Context) error {
	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		return badRequest(ctx, "offset must be an integer")
	}
	limit, err := queryInt(ctx, "limit", 0)
	if err != nil {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewGetItemsQuery(ctx.QueryParam("category"), offset, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]itemResponse, len(items))
	for i, item := range items {
		response[i] = toItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItem handles GET /api/items/:id - one item with reviews and rating
// summary.
func (s *Server) GetItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	query, err := queries.NewGetItemQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toItemDetailResponse(item))
}

// GetItemCategories handles GET /api/items/categories/list.
func (s *Server) GetItemCategories(ctx echo.Context) error {
	categories, err := s.getItemCategoriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetItemCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

// CreateOrder handles POST /api/orders - places an order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(req.ItemID[:])
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}
	serviceType, err := order.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), caller.ID, itemID, serviceType,
		req.Quantity, req.DeliveryAddress, req.ScheduledTime, req.MobileNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrder handles GET /api/orders/:id - visible to the owner and admins.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// GetUserOrders handles GET /api/orders/user/:id.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	userID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetUserOrdersQuery(userID, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderDetailsResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/orders/all - admin only.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	query, err := queries.NewGetAllOrdersQuery(caller)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderDetailsResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status - admin only,
// enforced by the command handler.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, status, req.CancellationReason, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateReview handles POST /api/reviews - one review per caller and item.
func (s *Server) CreateReview(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	var req createReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(req.ItemID[:])
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), caller.ID, itemID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	r, err := s.createReviewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReviewResponse(r))
}

// GetItemReviews handles GET /api/reviews/item/:id - public.
func (s *Server) GetItemReviews(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	query, err := queries.NewGetItemReviewsQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.getItemReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = toReviewDetailsResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserReviews handles GET /api/reviews/user/:id - self or admin.
func (s *Server) GetUserReviews(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return respondError(ctx, ports.ErrInvalidToken)
	}

	userID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetUserReviewsQuery(userID, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.getUserReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = toReviewDetailsResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllReviews handles GET /api/reviews/all - public.
func (s *Server) GetAllReviews(ctx echo.Context) error {
	reviews, err := s.getAllReviewsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllReviewsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = toReviewDetailsResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathUUID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

func queryInt(ctx echo.Context, param string, fallback int) (int, error) {
	raw := ctx.QueryParam(param)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
