package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dine-and-deliver/internal/models"

	"github.com/labstack/echo/v4"
)

func roleContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("userRole", role)
	}
	return c, rec
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	c, rec := roleContext(models.RoleCustomer)
	if err := RequireRole(models.RoleVendor)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if called {
		t.Error("next handler ran for the wrong role")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleBlocksMissingRole(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	c, rec := roleContext("")
	if err := RequireRole(models.RoleVendor)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	c, rec := roleContext(models.RoleVendor)
	if err := RequireRole(models.RoleVendor)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next handler did not run for the matching role")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
