// Package http binds the dispatch use cases to an echo HTTP surface.
// Identity arrives in the X-User-ID header, supplied by the auth layer in
// front of this service; handlers only enforce the domain ownership guards.
package http

import (
	"errors"
	"net/http"

	"fooddispatch/internal/core/application/usecases/commands"
	"fooddispatch/internal/core/application/usecases/queries"
	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/order"
	"fooddispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the caller's identity.
const HeaderUserID = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	claimJobHandler        commands.ClaimJobCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	confirmReceiptHandler  commands.ConfirmReceiptCommandHandler

	// Query handlers
	getAvailableJobsHandler     queries.GetAvailableJobsQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	claimJobHandler commands.ClaimJobCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		claimJobHandler:             claimJobHandler,
		confirmDeliveryHandler:      confirmDeliveryHandler,
		confirmReceiptHandler:       confirmReceiptHandler,
		getAvailableJobsHandler:     getAvailableJobsHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getCourierDeliveriesHandler: getCourierDeliveriesHandler,
	}
}

// RegisterRoutes attaches all dispatch routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/orders")
	g.POST("", s.CreateOrder)
	g.GET("", s.GetOrders)
	g.GET("/available-jobs", s.GetAvailableJobs)
	g.GET("/deliveries", s.GetDeliveries)
	g.POST("/:id/cancel", s.CancelOrder)
	g.POST("/:id/claim", s.ClaimJob)
	g.POST("/:id/confirm-delivery", s.ConfirmDelivery)
	g.POST("/:id/confirm-receipt", s.ConfirmReceipt)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make(map[kernel.UUID]int, len(req.Items))
	for _, line := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(line.MenuItemID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid menu item id: " + line.MenuItemID,
			})
		}
		items[menuItemID] += line.Quantity
	}

	cmd, err := commands.NewCreateOrderCommand(callerID, items)
	if err != nil {
		return mapError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /api/v1/orders, the caller's order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		var courierID *string
		if o.CourierID != nil {
			raw := o.CourierID.String()
			courierID = &raw
		}
		response[i] = OrderResponse{
			ID:                o.ID.String(),
			CustomerID:        callerID.String(),
			CourierID:         courierID,
			Status:            o.Status,
			TotalPriceCents:   o.TotalPriceCents,
			DriverConfirmed:   o.DriverConfirmed,
			CustomerConfirmed: o.CustomerConfirmed,
			CreatedAt:         o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableJobs handles GET /api/v1/orders/available-jobs.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	if _, err := callerID(ctx); err != nil {
		return unauthorized(ctx)
	}

	jobs, err := s.getAvailableJobsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableJobsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		response[i] = JobResponse{
			ID:              job.ID.String(),
			TotalPriceCents: job.TotalPriceCents,
			ItemCount:       job.ItemCount,
			CreatedAt:       job.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveries handles GET /api/v1/orders/deliveries, the caller's courier
// worklist.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	deliveries, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:                d.ID.String(),
			CustomerID:        d.CustomerID.String(),
			Status:            d.Status,
			TotalPriceCents:   d.TotalPriceCents,
			DriverConfirmed:   d.DriverConfirmed,
			CustomerConfirmed: d.CustomerConfirmed,
			CreatedAt:         d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// ClaimJob handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimJob(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimJobCommand(orderID, callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	claimed, err := s.claimJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	confirmed, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(confirmed))
}

// ConfirmReceipt handles POST /api/v1/orders/:id/confirm-receipt.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	callerID, orderID, err := callerAndOrderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmReceiptCommand(orderID, callerID)
	if err != nil {
		return mapError(ctx, err)
	}

	confirmed, err := s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(confirmed))
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
}

func callerAndOrderID(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	return caller, orderID, nil
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid " + HeaderUserID + " header",
	})
}

// mapError translates domain errors to HTTP statuses: validation 400,
// ownership 403, missing objects 404, state conflicts 409, everything else
// 500.
func mapError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Issues:  validationErr.Issues,
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrJobUnavailable), errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	var courierID *string
	if id := o.Courier(); id != nil {
		raw := id.String()
		courierID = &raw
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:               item.ID().String(),
			MenuItemID:       item.MenuItemID().String(),
			Quantity:         item.Quantity(),
			PriceAtTimeCents: item.PriceAtTime().Cents(),
		})
	}

	return OrderResponse{
		ID:                o.ID().String(),
		CustomerID:        o.CustomerID().String(),
		CourierID:         courierID,
		Status:            o.Status().String(),
		TotalPriceCents:   o.TotalPrice().Cents(),
		DriverConfirmed:   o.DriverConfirmed(),
		CustomerConfirmed: o.CustomerConfirmed(),
		CreatedAt:         o.CreatedAt(),
		Items:             items,
	}
}
