// Package http exposes the order lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// idempotencyKeyHeader carries the client's retry key for order creation.
const idempotencyKeyHeader = "X-Idempotency-Key"

// Handler interfaces let the server be exercised against fakes in tests.
type (
	// CreateOrderHandler places a new order.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	// CancelOrderHandler cancels a pending order.
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}

	// GetOrderHandler reads a single order.
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	// ListOrdersHandler reads a page of the caller's order history.
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}

	// GetOrderStatsHandler summarizes the caller's order history.
	GetOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
)

// Server wires the order endpoints to their use case handlers.
type Server struct {
	createOrderHandler   CreateOrderHandler
	cancelOrderHandler   CancelOrderHandler
	getOrderHandler      GetOrderHandler
	listOrdersHandler    ListOrdersHandler
	getOrderStatsHandler GetOrderStatsHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	cancelOrderHandler CancelOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
	getOrderStatsHandler GetOrderStatsHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		getOrderStatsHandler: getOrderStatsHandler,
	}
}

// RegisterRoutes mounts the order endpoints behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	orders := e.Group("/api/v1/orders", auth.Handler)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/stats", s.GetOrderStats)
	orders.GET("/:orderID", s.GetOrder)
	orders.POST("/:orderID/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// Clients may pass an X-Idempotency-Key header to make retries safe.
func (s *Server) CreateOrder(c echo.Context) error {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		items,
		req.ShippingAddress,
		req.PaymentMethod,
		c.Request().Header.Get(idempotencyKeyHeader),
	)
	if err != nil {
		return writeError(c, err)
	}

	placed, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// GetOrder handles GET /api/v1/orders/:orderID - reads one order.
func (s *Server) GetOrder(c echo.Context) error {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromQuery(view))
}

// ListOrders handles GET /api/v1/orders - pages through the caller's history.
// Optional limit and offset query parameters control the page window.
func (s *Server) ListOrders(c echo.Context) error {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return unauthenticated(c)
	}

	page, err := pageFromRequest(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListOrdersQuery(ownerID, page)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, listResponseFromQuery(view))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return unauthenticated(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CancelOrderResponse{
		Message: "Order cancelled successfully",
		Order:   orderResponseFromDomain(cancelled),
	})
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(c echo.Context) error {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return unauthenticated(c)
	}

	query, err := queries.NewGetOrderStatsQuery(ownerID)
	if err != nil {
		return writeError(c, err)
	}

	stats, err := s.getOrderStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, statsResponseFromQuery(stats))
}

// pageFromRequest reads the limit and offset query parameters.
// Absent parameters fall back to the repository defaults.
func pageFromRequest(c echo.Context) (ports.Page, error) {
	var page ports.Page

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return ports.Page{}, errs.NewValueIsInvalidError("limit")
		}
		page.Limit = limit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return ports.Page{}, errs.NewValueIsInvalidError("offset")
		}
		page.Offset = offset
	}

	return page, nil
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

// writeError maps domain errors to HTTP status codes.
//
// Not found and not authorized stay distinct (404 vs 403), and a payment
// decline (402) is separated from a provider fault (502).
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrPaymentDeclined):
		status = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrPaymentUnavailable):
		status = http.StatusBadGateway
		message = err.Error()
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
