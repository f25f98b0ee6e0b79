// Package http exposes the reservation system over a JSON REST API.
// It translates wire requests into commands and queries and maps the core's
// error classes onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Quoter prices an order. The reservation engine satisfies this.
type Quoter interface {
	Quote(o *order.Order) (kernel.Money, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	reserveHandler       commands.ReserveCommandHandler
	startRentalHandler   commands.StartRentalCommandHandler
	cancelHandler        commands.CancelCommandHandler
	returnVehicleHandler commands.ReturnVehicleCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getFleetStatusHandler  queries.GetFleetStatusQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler

	quoter Quoter
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	reserveHandler commands.ReserveCommandHandler,
	startRentalHandler commands.StartRentalCommandHandler,
	cancelHandler commands.CancelCommandHandler,
	returnVehicleHandler commands.ReturnVehicleCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getFleetStatusHandler queries.GetFleetStatusQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	quoter Quoter,
) *Server {
	return &Server{
		reserveHandler:         reserveHandler,
		startRentalHandler:     startRentalHandler,
		cancelHandler:          cancelHandler,
		returnVehicleHandler:   returnVehicleHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getFleetStatusHandler:  getFleetStatusHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		quoter:                 quoter,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/reservations", s.CreateReservation)
	api.POST("/reservations/:id/start", s.StartRental)
	api.POST("/reservations/:id/cancel", s.CancelReservation)
	api.POST("/reservations/:id/return", s.ReturnVehicle)
	api.GET("/fleet", s.GetFleet)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
}

// CreateReservation handles POST /api/v1/reservations.
func (s *Server) CreateReservation(ctx echo.Context) error {
	var newReservation NewReservation
	if err := ctx.Bind(&newReservation); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	category, err := vehicle.CategoryFromString(newReservation.Category)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var startTime time.Time
	if newReservation.StartTime != nil {
		startTime = *newReservation.StartTime
	}

	cmd, err := commands.NewReserveCommand(category, startTime, newReservation.Days)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	reserved, err := s.reserveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.toOrder(reserved)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// StartRental handles POST /api/v1/reservations/:id/start.
func (s *Server) StartRental(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartRentalCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	started, err := s.startRentalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.toOrder(started)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel.
func (s *Server) CancelReservation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnVehicle handles POST /api/v1/reservations/:id/return.
func (s *Server) ReturnVehicle(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var returnRequest ReturnRequest
	if err := ctx.Bind(&returnRequest); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReturnVehicleCommand(orderID, returnRequest.Mileage)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	returned, err := s.returnVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Vehicle{
		ID:       returned.ID().String(),
		Category: returned.Category().String(),
		Mileage:  returned.Mileage(),
	})
}

// GetFleet handles GET /api/v1/fleet.
func (s *Server) GetFleet(ctx echo.Context) error {
	status, err := s.getFleetStatusHandler.Handle(ctx.Request().Context(), queries.NewGetFleetStatusQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]FleetCategory, len(status))
	for i, entry := range status {
		response[i] = FleetCategory{
			Category:   entry.Category,
			Available:  entry.Available,
			RatePerDay: entry.RatePerDay,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	active, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderList(active))
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	retired, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderList(retired))
}

func (s *Server) toOrder(o *order.Order) (Order, error) {
	total, err := s.quoter.Quote(o)
	if err != nil {
		return Order{}, err
	}

	return Order{
		ID:        o.ID().String(),
		Status:    o.Status().String(),
		Category:  o.Vehicle().Category().String(),
		VehicleID: o.Vehicle().ID().String(),
		StartTime: o.StartTime(),
		EndTime:   o.EndTime(),
		Days:      o.Days(),
		Total:     total.String(),
	}, nil
}

func toOrderList(responses []queries.OrderResponse) []Order {
	orders := make([]Order, len(responses))
	for i, r := range responses {
		orders[i] = Order{
			ID:        r.ID.String(),
			Status:    r.Status,
			Category:  r.Category,
			VehicleID: r.VehicleID.String(),
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Days:      r.Days,
			Total:     r.Total.String(),
		}
	}
	return orders
}

// errorResponse maps the core's error classes onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrVehicleUnavailable),
		errors.Is(err, errs.ErrInvalidStateTransition):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
