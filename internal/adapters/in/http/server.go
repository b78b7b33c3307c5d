// Package http exposes the beverage ordering operations over a JSON API.
// Handlers stay thin: they parse the request, build a command or query, and
// map domain errors onto HTTP status codes. The caller's restaurant identity
// arrives in the X-Restaurant-ID header, set by the authenticating proxy in
// front of this service.
package http

import (
	"net/http"
	"strconv"
	"time"

	"beverage/internal/core/application/usecases/commands"
	"beverage/internal/core/application/usecases/queries"
	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RestaurantIDHeader carries the authenticated caller's restaurant identity.
const RestaurantIDHeader = "X-Restaurant-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerRestaurantHandler   commands.RegisterRestaurantCommandHandler
	updateProfileHandler        commands.UpdateProfileCommandHandler
	setPriceHandler             commands.SetPriceCommandHandler
	removeSizeHandler           commands.RemoveSizeCommandHandler
	placeOrderHandler           commands.PlaceOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	transitionOrdersHandler     commands.TransitionOrdersCommandHandler
	forceSetStatusHandler       commands.ForceSetStatusCommandHandler
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler
	setPersonActiveHandler      commands.SetDeliveryPersonActiveCommandHandler
	removeDeliveryPersonHandler commands.RemoveDeliveryPersonCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	unassignDeliveryHandler     commands.UnassignDeliveryCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	getCatalogHandler          queries.GetCatalogQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	recentNotificationsHandler queries.RecentNotificationsQueryHandler
	dashboardHandler           queries.DashboardQueryHandler
}

// ServerHandlers bundles every use case handler the server exposes.
type ServerHandlers struct {
	RegisterRestaurant   commands.RegisterRestaurantCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	SetPrice             commands.SetPriceCommandHandler
	RemoveSize           commands.RemoveSizeCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	TransitionOrder      commands.TransitionOrderCommandHandler
	TransitionOrders     commands.TransitionOrdersCommandHandler
	ForceSetStatus       commands.ForceSetStatusCommandHandler
	CreateDeliveryPerson commands.CreateDeliveryPersonCommandHandler
	SetPersonActive      commands.SetDeliveryPersonActiveCommandHandler
	RemoveDeliveryPerson commands.RemoveDeliveryPersonCommandHandler
	AssignDelivery       commands.AssignDeliveryCommandHandler
	UnassignDelivery     commands.UnassignDeliveryCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	GetCatalog          queries.GetCatalogQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
	RecentNotifications queries.RecentNotificationsQueryHandler
	Dashboard           queries.DashboardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		registerRestaurantHandler:   handlers.RegisterRestaurant,
		updateProfileHandler:        handlers.UpdateProfile,
		setPriceHandler:             handlers.SetPrice,
		removeSizeHandler:           handlers.RemoveSize,
		placeOrderHandler:           handlers.PlaceOrder,
		transitionOrderHandler:      handlers.TransitionOrder,
		transitionOrdersHandler:     handlers.TransitionOrders,
		forceSetStatusHandler:       handlers.ForceSetStatus,
		createDeliveryPersonHandler: handlers.CreateDeliveryPerson,
		setPersonActiveHandler:      handlers.SetPersonActive,
		removeDeliveryPersonHandler: handlers.RemoveDeliveryPerson,
		assignDeliveryHandler:       handlers.AssignDelivery,
		unassignDeliveryHandler:     handlers.UnassignDelivery,
		markNotificationReadHandler: handlers.MarkNotificationRead,
		getCatalogHandler:           handlers.GetCatalog,
		getOrderHandler:             handlers.GetOrder,
		listOrdersHandler:           handlers.ListOrders,
		recentNotificationsHandler:  handlers.RecentNotifications,
		dashboardHandler:            handlers.Dashboard,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/restaurants", s.RegisterRestaurant)
	api.PUT("/restaurants/profile", s.UpdateProfile)
	api.GET("/dashboard", s.GetDashboard)

	api.GET("/catalog", s.GetCatalog)
	api.PUT("/catalog/:size", s.SetPrice)
	api.DELETE("/catalog/:size", s.RemoveSize)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/transition", s.TransitionOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.PUT("/orders/:id/status", s.ForceSetStatus)
	api.POST("/orders/:id/assignment", s.AssignDelivery)
	api.DELETE("/orders/:id/assignment", s.UnassignDelivery)

	api.POST("/delivery-people", s.CreateDeliveryPerson)
	api.PUT("/delivery-people/:id/active", s.SetDeliveryPersonActive)
	api.DELETE("/delivery-people/:id", s.RemoveDeliveryPerson)

	api.GET("/notifications", s.RecentNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func restaurantIdentity(ctx echo.Context) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(RestaurantIDHeader))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	var req RegisterRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(restaurantID, req.Name, req.Address, req.Phone)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.registerRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterRestaurantResponse{ID: restaurantID.String()})
}

// UpdateProfile handles PUT /api/v1/restaurants/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(restaurantID, req.Name, req.Address, req.Phone)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	query, err := queries.NewDashboardQuery(restaurantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	summary, err := s.dashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Dashboard{
		TotalOrders:         summary.TotalOrders,
		DeliveredOrders:     summary.DeliveredOrders,
		OpenOrders:          summary.OpenOrders,
		TotalSpent:          summary.TotalSpent.String(),
		RecentOrders:        dashboardOrdersFromResponse(summary.RecentOrders),
		UnreadNotifications: summary.UnreadNotifications,
	})
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	entries, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CatalogEntry, len(entries))
	for i, entry := range entries {
		response[i] = CatalogEntry{
			Size:            entry.Size.String(),
			Price:           entry.Price.String(),
			MinimumQuantity: entry.MinimumQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetPrice handles PUT /api/v1/catalog/:size.
func (s *Server) SetPrice(ctx echo.Context) error {
	size, err := catalog.ParseSize(ctx.Param("size"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetPriceRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetPriceCommand(size, price)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.setPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveSize handles DELETE /api/v1/catalog/:size.
func (s *Server) RemoveSize(ctx echo.Context) error {
	size, err := catalog.ParseSize(ctx.Param("size"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveSizeCommand(size)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.removeSizeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	size, err := catalog.ParseSize(req.Size)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, restaurantID, size, req.Quantity, req.Notes)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	filter, err := parseListOrdersFilter(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(restaurantID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromListResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID, restaurantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromGetResponse(result))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, status)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrders handles POST /api/v1/orders/transition.
func (s *Server) TransitionOrders(ctx echo.Context) error {
	var req BulkTransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeBadRequest(ctx, "Invalid order ID: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewTransitionOrdersCommand(orderIDs, status)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	results, err := s.transitionOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BulkTransitionResult, len(results))
	for i, result := range results {
		row := BulkTransitionResult{
			OrderID: result.OrderID.String(),
			OK:      result.Err == nil,
		}
		if result.Err != nil {
			row.Error = result.Err.Error()
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// ForceSetStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ForceSetStatus(ctx echo.Context) error {
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req ForceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewForceSetStatusCommand(orderID, status, req.Reason)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.forceSetStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/orders/:id/assignment.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req AssignDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.UUIDFromString(req.PersonID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid person ID")
	}

	cmd, err := commands.NewAssignDeliveryCommand(kernel.NewUUID(), orderID, personID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnassignDelivery handles DELETE /api/v1/orders/:id/assignment.
func (s *Server) UnassignDelivery(ctx echo.Context) error {
	orderID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewUnassignDeliveryCommand(orderID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.unassignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDeliveryPerson handles POST /api/v1/delivery-people.
func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	var req CreateDeliveryPersonRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	personID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPersonCommand(personID, req.Name, req.Phone)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.createDeliveryPersonHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryPersonResponse{ID: personID.String()})
}

// SetDeliveryPersonActive handles PUT /api/v1/delivery-people/:id/active.
func (s *Server) SetDeliveryPersonActive(ctx echo.Context) error {
	personID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid person ID")
	}

	var req SetActiveRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDeliveryPersonActiveCommand(personID, req.Active)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.setPersonActiveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDeliveryPerson handles DELETE /api/v1/delivery-people/:id.
func (s *Server) RemoveDeliveryPerson(ctx echo.Context) error {
	personID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid person ID")
	}

	cmd, err := commands.NewRemoveDeliveryPersonCommand(personID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.removeDeliveryPersonHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecentNotifications handles GET /api/v1/notifications.
func (s *Server) RecentNotifications(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewRecentNotificationsQuery(restaurantID, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.recentNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Notification, len(entries))
	for i, entry := range entries {
		response[i] = Notification{
			ID:        entry.ID.String(),
			Message:   entry.Message,
			Read:      entry.Read,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	restaurantID, ok := restaurantIdentity(ctx)
	if !ok {
		return writeBadRequest(ctx, "Missing or invalid "+RestaurantIDHeader+" header")
	}

	notificationID, ok := pathUUID(ctx, "id")
	if !ok {
		return writeBadRequest(ctx, "Invalid notification ID")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, restaurantID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseListOrdersFilter builds the optional listing filter from query
// parameters: status, size, date_from, date_to (RFC 3339 or YYYY-MM-DD).
func parseListOrdersFilter(ctx echo.Context) (queries.ListOrdersFilter, error) {
	var filter queries.ListOrdersFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("size"); raw != "" {
		size, err := catalog.ParseSize(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.Size = &size
	}

	if raw := ctx.QueryParam("date_from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.DateFrom = &from
	}

	if raw := ctx.QueryParam("date_to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		// A bare date upper bound is inclusive of the whole day.
		if len(raw) == len(time.DateOnly) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.DateTo = &to
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return t, nil
}
