package dish

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dine-and-deliver/internal/models"

	"github.com/labstack/echo/v4"
)

type stubService struct {
	dish   *models.Dish
	dishes []*models.Dish
	err    error
}

func (s *stubService) Add(ctx context.Context, vendorUserID string, req models.CreateDishRequest) (*models.Dish, error) {
	return s.dish, s.err
}

func (s *stubService) Update(ctx context.Context, vendorUserID, dishID string, req models.UpdateDishRequest) (*models.Dish, error) {
	return s.dish, s.err
}

func (s *stubService) Delete(ctx context.Context, vendorUserID, dishID string) error {
	return s.err
}

func (s *stubService) MyMenu(ctx context.Context, vendorUserID string) ([]*models.Dish, error) {
	return s.dishes, s.err
}

func (s *stubService) Get(ctx context.Context, dishID string) (*models.Dish, error) {
	return s.dish, s.err
}

func (s *stubService) ListAll(ctx context.Context) ([]*models.Dish, error) {
	return s.dishes, s.err
}

func (s *stubService) ListByVendor(ctx context.Context, vendorID string) ([]*models.Dish, error) {
	return s.dishes, s.err
}

func (s *stubService) Search(ctx context.Context, query string) ([]*models.Dish, error) {
	return s.dishes, s.err
}

func dishContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", "user-1")
	c.Set("userRole", models.RoleVendor)
	c.SetParamNames("dishId")
	c.SetParamValues("dish-1")
	return c, rec
}

// A missing dish must answer 404 even when the sentinel arrives wrapped
// with repository context.
func TestGetDishMissingAnswers404(t *testing.T) {
	h := NewHandler(&stubService{err: fmt.Errorf("repository.FindByID: %w", models.ErrNotFound)})

	c, rec := dishContext(http.MethodGet, "")
	if err := h.GetDish(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateDishMissingAnswers404(t *testing.T) {
	h := NewHandler(&stubService{err: fmt.Errorf("service.UpdateDish: %w", models.ErrNotFound)})

	c, rec := dishContext(http.MethodPut, `{"name":"Aloo Paratha","price":50}`)
	if err := h.UpdateDish(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteDishMissingAnswers404(t *testing.T) {
	h := NewHandler(&stubService{err: fmt.Errorf("repository.Delete: %w", models.ErrNotFound)})

	c, rec := dishContext(http.MethodDelete, "")
	if err := h.DeleteDish(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
