package dish

import (
	"errors"
	"net/http"

	"dine-and-deliver/internal/models"
	"dine-and-deliver/internal/modules/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the dish catalog.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new dish handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts catalog routes. All routes sit behind the JWT
// middleware; menu mutations additionally require the Vendor role.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	vendorOnly := auth.RequireRole(models.RoleVendor)

	g.POST("", h.AddDish, vendorOnly)
	g.PUT("/:dishId", h.UpdateDish, vendorOnly)
	g.DELETE("/:dishId", h.DeleteDish, vendorOnly)
	g.GET("/mine", h.MyMenu, vendorOnly)
	g.GET("", h.ListAll)
	g.GET("/search", h.Search)
	g.GET("/:dishId", h.GetDish)
	g.GET("/vendor/:vendorId", h.ListByVendor)
}

func (h *Handler) AddDish(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req models.CreateDishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	dish, err := h.svc.Add(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor profile not found"})
		}
		c.Logger().Error("Handler.AddDish: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to add dish"})
	}
	return c.JSON(http.StatusCreated, dish)
}

func (h *Handler) UpdateDish(c echo.Context) error {
	userID := c.Get("userID").(string)
	dishID := c.Param("dishId")

	var req models.UpdateDishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	dish, err := h.svc.Update(c.Request().Context(), userID, dishID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Dish not found"})
		}
		c.Logger().Error("Handler.UpdateDish: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update dish"})
	}
	return c.JSON(http.StatusOK, dish)
}

func (h *Handler) DeleteDish(c echo.Context) error {
	userID := c.Get("userID").(string)
	dishID := c.Param("dishId")

	if err := h.svc.Delete(c.Request().Context(), userID, dishID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Dish not found"})
		}
		c.Logger().Error("Handler.DeleteDish: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to delete dish"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MyMenu(c echo.Context) error {
	userID := c.Get("userID").(string)

	dishes, err := h.svc.MyMenu(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor profile not found"})
		}
		c.Logger().Error("Handler.MyMenu: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to list menu"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dishes": dishes})
}

func (h *Handler) ListAll(c echo.Context) error {
	dishes, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Error("Handler.ListAll: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to list dishes"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dishes": dishes})
}

func (h *Handler) GetDish(c echo.Context) error {
	dish, err := h.svc.Get(c.Request().Context(), c.Param("dishId"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Dish not found"})
		}
		c.Logger().Error("Handler.GetDish: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to get dish"})
	}
	return c.JSON(http.StatusOK, dish)
}

func (h *Handler) ListByVendor(c echo.Context) error {
	dishes, err := h.svc.ListByVendor(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		c.Logger().Error("Handler.ListByVendor: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to list dishes"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dishes": dishes})
}

func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Search query required"})
	}
	dishes, err := h.svc.Search(c.Request().Context(), query)
	if err != nil {
		c.Logger().Error("Handler.Search: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to search dishes"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dishes": dishes})
}
