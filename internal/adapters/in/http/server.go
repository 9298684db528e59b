// Package http exposes the order workflow over a JSON API. Handlers translate
// requests into commands and queries and map the error taxonomy onto HTTP
// status codes: validation failures are 400, unknown orders 404, transition
// and version conflicts 409.
package http

import (
	"errors"
	"net/http"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	confirmOrderHandler        commands.ConfirmOrderCommandHandler
	acceptOrderHandler         commands.AcceptOrderCommandHandler
	rejectOrderHandler         commands.RejectOrderCommandHandler
	startShoppingHandler       commands.StartShoppingCommandHandler
	markOutForDeliveryHandler  commands.MarkOutForDeliveryCommandHandler
	markDeliveredHandler       commands.MarkDeliveredCommandHandler
	adminOverrideStatusHandler commands.AdminOverrideStatusCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	startShoppingHandler commands.StartShoppingCommandHandler,
	markOutForDeliveryHandler commands.MarkOutForDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	adminOverrideStatusHandler commands.AdminOverrideStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		confirmOrderHandler:        confirmOrderHandler,
		acceptOrderHandler:         acceptOrderHandler,
		rejectOrderHandler:         rejectOrderHandler,
		startShoppingHandler:       startShoppingHandler,
		markOutForDeliveryHandler:  markOutForDeliveryHandler,
		markDeliveredHandler:       markDeliveredHandler,
		adminOverrideStatusHandler: adminOverrideStatusHandler,
		getOrderHandler:            getOrderHandler,
		getOrderHistoryHandler:     getOrderHistoryHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.GET("/orders/:id/history", s.GetOrderHistory)
	v1.POST("/orders/:id/confirm", s.ConfirmOrder)
	v1.POST("/orders/:id/accept", s.AcceptOrder)
	v1.POST("/orders/:id/reject", s.RejectOrder)
	v1.POST("/orders/:id/start-shopping", s.StartShopping)
	v1.POST("/orders/:id/out-for-delivery", s.MarkOutForDelivery)
	v1.POST("/orders/:id/delivered", s.MarkDelivered)
	v1.POST("/orders/:id/status", s.OverrideStatus)
}

// CreateOrder handles POST /api/v1/orders - submits a new shopping list.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	deliveryFee, err := kernel.NewMoney(body.DeliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid delivery fee: "+err.Error())
	}

	requestedItems := make([]order.RequestedItem, 0, len(body.Items))
	for _, line := range body.Items {
		price, priceErr := kernel.NewMoney(line.OriginalEstimatedPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid item price: "+priceErr.Error())
		}
		item, itemErr := order.NewRequestedItem(line.ItemID, line.Name, line.Quantity, line.Unit, price)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item: "+itemErr.Error())
		}
		requestedItems = append(requestedItems, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, vendorID, body.DeliveryAddress, requestedItems, deliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ConfirmOrder handles POST /api/v1/orders/{id}/confirm - the vendor's response.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body ConfirmOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorUserID, err := kernel.UUIDFromString(body.VendorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor user id: "+err.Error())
	}

	adjustments := make([]order.ItemAdjustment, 0, len(body.Adjustments))
	for _, line := range body.Adjustments {
		var confirmedPrice *kernel.Money
		if line.ConfirmedPrice != nil {
			price, priceErr := kernel.NewMoney(*line.ConfirmedPrice)
			if priceErr != nil {
				return badRequest(ctx, "Invalid confirmed price: "+priceErr.Error())
			}
			confirmedPrice = &price
		}

		adjustment, adjErr := order.NewItemAdjustment(
			line.ItemID,
			line.Name,
			line.Quantity,
			line.Unit,
			order.AvailabilityStatus(line.Availability),
			confirmedPrice,
			line.Note,
		)
		if adjErr != nil {
			return badRequest(ctx, "Invalid adjustment: "+adjErr.Error())
		}
		adjustments = append(adjustments, adjustment)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, vendorUserID, adjustments, body.OverallNote)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept - the customer's acceptance.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body AcceptOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerUserID, err := kernel.UUIDFromString(body.CustomerUserID)
	if err != nil {
		return badRequest(ctx, "Invalid customer user id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, customerUserID)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance data: "+err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{id}/reject - either party declining.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body RejectOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, order.Role(body.Role), userID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartShopping handles POST /api/v1/orders/{id}/start-shopping.
func (s *Server) StartShopping(ctx echo.Context) error {
	orderID, vendorUserID, err := fulfillmentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartShoppingCommand(orderID, vendorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.startShoppingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOutForDelivery handles POST /api/v1/orders/{id}/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	orderID, vendorUserID, err := fulfillmentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(orderID, vendorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.markOutForDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/{id}/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, vendorUserID, err := fulfillmentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, vendorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideStatus handles POST /api/v1/orders/{id}/status - administrative override.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body StatusOverride
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminUserID, err := kernel.UUIDFromString(body.AdminUserID)
	if err != nil {
		return badRequest(ctx, "Invalid admin user id: "+err.Error())
	}

	cmd, err := commands.NewAdminOverrideStatusCommand(
		orderID, adminUserID, order.Status(body.NewStatus), body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid override data: "+err.Error())
	}

	if err = s.adminOverrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{id} - the full order view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	orderView, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(orderView))
}

// GetOrderHistory handles GET /api/v1/orders/{id}/history - newest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyFromQuery(history))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	activeOrders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummary, 0, len(activeOrders))
	for _, row := range activeOrders {
		response = append(response, OrderSummary{
			ID:              row.ID.String(),
			CustomerID:      row.CustomerID.String(),
			VendorID:        row.VendorID.String(),
			Status:          row.Status,
			DeliveryAddress: row.DeliveryAddress,
			Version:         row.Version,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func fulfillmentParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var body FulfillmentAction
	if err = ctx.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	vendorUserID, err := kernel.UUIDFromString(body.VendorUserID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, vendorUserID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a command or query failure onto an HTTP status code.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
