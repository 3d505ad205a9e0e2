package order

import (
	"errors"
	"net/http"

	"dine-and-deliver/internal/models"
	"dine-and-deliver/internal/modules/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate // For request body validation
}

// NewHandler creates a new order handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the order routes behind the JWT middleware.
// Fulfillment routes additionally require the Vendor role.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	vendorOnly := auth.RequireRole(models.RoleVendor)

	g.POST("", h.CreateOrder)
	g.GET("/:orderId", h.TrackOrder)
	g.PATCH("/:orderId/status", h.UpdateStatus, vendorOnly)
	g.PATCH("/:orderId/cancel", h.CancelOrder)
	g.PATCH("/:orderId/rate", h.RateOrder)

	// Dashboards
	g.GET("/customer/all", h.ListCustomerOrders)
	g.GET("/customer/active", h.ListCustomerActiveOrders)
	g.GET("/vendor/all", h.ListVendorOrders, vendorOnly)
	g.GET("/vendor/active", h.ListVendorActiveOrders, vendorOnly)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	order, err := h.svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Cart cannot be empty"})
		case errors.Is(err, models.ErrInvalidLocation):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Drop location (latitude, longitude) required"})
		case errors.Is(err, models.ErrInvalidCartLine):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Cart has a negative price or non-positive quantity"})
		case errors.Is(err, models.ErrDishMismatch):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Some dishes are invalid for this vendor"})
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.CreateOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to create order"})
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) TrackOrder(c echo.Context) error {
	userID := c.Get("userID").(string)
	orderID := c.Param("orderId")

	order, err := h.svc.Track(c.Request().Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		}
		c.Logger().Error("Handler.TrackOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to retrieve order"})
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	userID := c.Get("userID").(string)
	orderID := c.Param("orderId")

	var req models.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	order, err := h.svc.UpdateStatus(c.Request().Context(), orderID, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Unknown order status"})
		case errors.Is(err, models.ErrOrderClosed), errors.Is(err, models.ErrStatusOrder):
			return c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Order status cannot change this way"})
		}
		c.Logger().Error("Handler.UpdateStatus: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update order status"})
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c echo.Context) error {
	userID := c.Get("userID").(string)
	role, _ := c.Get("userRole").(string)
	orderID := c.Param("orderId")

	var req models.CancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	var order *models.Order
	var err error
	if role == models.RoleVendor {
		order, err = h.svc.CancelByVendor(c.Request().Context(), orderID, userID, req.Reason)
	} else {
		order, err = h.svc.CancelByCustomer(c.Request().Context(), orderID, userID, req.Reason)
	}
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		case errors.Is(err, models.ErrOrderClosed):
			return c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Cannot cancel this order"})
		case errors.Is(err, models.ErrCancelReasonRequired):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Cancellation reason is required"})
		}
		c.Logger().Error("Handler.CancelOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to cancel order"})
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) RateOrder(c echo.Context) error {
	userID := c.Get("userID").(string)
	orderID := c.Param("orderId")

	var req models.RateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	order, err := h.svc.Rate(c.Request().Context(), orderID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		case errors.Is(err, models.ErrInvalidRating):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Ratings must be between 0 and 5"})
		}
		c.Logger().Error("Handler.RateOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to rate order"})
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) ListCustomerOrders(c echo.Context) error {
	return h.listCustomer(c, false)
}

func (h *Handler) ListCustomerActiveOrders(c echo.Context) error {
	return h.listCustomer(c, true)
}

func (h *Handler) ListVendorOrders(c echo.Context) error {
	return h.listVendor(c, false)
}

func (h *Handler) ListVendorActiveOrders(c echo.Context) error {
	return h.listVendor(c, true)
}

func (h *Handler) listCustomer(c echo.Context, activeOnly bool) error {
	userID := c.Get("userID").(string)

	orders, err := h.svc.ListCustomerOrders(c.Request().Context(), userID, activeOnly)
	if err != nil {
		c.Logger().Error("Handler.ListCustomerOrders: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to retrieve orders"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"total": len(orders), "orders": orders})
}

func (h *Handler) listVendor(c echo.Context, activeOnly bool) error {
	userID := c.Get("userID").(string)

	orders, err := h.svc.ListVendorOrders(c.Request().Context(), userID, activeOnly)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.ListVendorOrders: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to retrieve orders"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"total": len(orders), "orders": orders})
}
