// Package http exposes the storefront over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP handlers to command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	saveMenuItemHandler      commands.SaveMenuItemCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler

	// Query handlers
	getMenuHandler           queries.GetMenuQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getAllDriversHandler     queries.GetAllDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	saveMenuItemHandler commands.SaveMenuItemCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		recordPaymentHandler:     recordPaymentHandler,
		saveMenuItemHandler:      saveMenuItemHandler,
		createDriverHandler:      createDriverHandler,
		getMenuHandler:           getMenuHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getAllDriversHandler:     getAllDriversHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.SaveMenuItem)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/payment", s.RecordPayment)
	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - retrieves all available catalog items.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SaveMenuItem handles POST /api/v1/menu - creates or replaces a catalog item.
func (s *Server) SaveMenuItem(ctx echo.Context) error {
	var req SaveMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return s.badRequest(ctx, "Invalid item id: "+err.Error())
		}
		itemID = parsed
	}

	category, err := menu.CategoryFromString(req.Category)
	if err != nil {
		return s.badRequest(ctx, "Invalid category: "+err.Error())
	}

	options, err := toOptionGroups(req.Options)
	if err != nil {
		return s.badRequest(ctx, "Invalid options: "+err.Error())
	}

	cmd, err := commands.NewSaveMenuItemCommand(
		itemID, req.Name, req.Description, req.BasePrice, category, req.Available, options)
	if err != nil {
		return s.badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.saveMenuItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, SaveMenuItemResponse{ID: itemID.String()})
}

// PlaceOrder handles POST /api/v1/orders - checks out a cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	deliveryType, err := order.DeliveryTypeFromString(req.DeliveryType)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery type: "+err.Error())
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return s.badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	lines := make([]commands.OrderLine, len(req.Items))
	for i, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return s.badRequest(ctx, "Invalid menu item id: "+idErr.Error())
		}

		multi := make([]commands.GroupVariant, len(item.MultiChoices))
		for j, choice := range item.MultiChoices {
			multi[j] = commands.GroupVariant(choice)
		}

		lines[i] = commands.OrderLine{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			SingleChoices:       item.SingleChoices,
			MultiChoices:        multi,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		req.ShopID,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerEmail,
		req.DeliveryAddress,
		deliveryType,
		paymentMethod,
		req.Notes,
		lines,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order in full detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetOrdersByStatus handles GET /api/v1/orders?status= - lists order summaries.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+err.Error())
	}

	summaries, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummaryResponse{
			ID:            summary.ID.String(),
			CustomerName:  summary.CustomerName,
			DeliveryType:  summary.DeliveryType,
			Status:        summary.Status,
			PaymentStatus: summary.PaymentStatus,
			Total:         summary.Total,
			CreatedAt:     summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - manual transitions.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+err.Error())
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		parsed, idErr := kernel.UUIDFromString(*req.DriverID)
		if idErr != nil {
			return s.badRequest(ctx, "Invalid driver id: "+idErr.Error())
		}
		driverID = &parsed
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next, driverID)
	if err != nil {
		return s.badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:id/payment - settles or refunds.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	next, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return s.badRequest(ctx, "Invalid payment status: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, next)
	if err != nil {
		return s.badRequest(ctx, "Invalid payment change: "+err.Error())
	}

	if handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers - retrieves the driver roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			ID:     d.ID.String(),
			Name:   d.Name,
			Phone:  d.Phone,
			Active: d.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - adds a driver to the roster.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name, req.Phone)
	if err != nil {
		return s.badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateDriverResponse{ID: driverID.String()})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case failures onto HTTP statuses: missing aggregates
// to 404, rejected state changes to 409, bad input to 400.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrIllegalPaymentTransition),
		errors.Is(err, commands.ErrDriverNotAvailable),
		errors.Is(err, commands.ErrItemUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func toOptionGroups(payload []MenuOptionPayload) ([]menu.OptionGroup, error) {
	options := make([]menu.OptionGroup, 0, len(payload))
	for _, group := range payload {
		mode, err := menu.SelectionModeFromString(group.Mode)
		if err != nil {
			return nil, err
		}

		variants := make([]menu.Variant, 0, len(group.Variants))
		for _, variant := range group.Variants {
			restored, vErr := menu.NewVariant(variant.ID, variant.Name, variant.PriceAdjustment)
			if vErr != nil {
				return nil, vErr
			}
			variants = append(variants, restored)
		}

		restored, err := menu.NewOptionGroup(group.ID, group.Name, mode, group.Required, variants)
		if err != nil {
			return nil, err
		}
		options = append(options, restored)
	}

	return options, nil
}
