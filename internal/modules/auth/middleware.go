package auth

import (
	"net/http"

	"dine-and-deliver/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Middleware validates the bearer token and copies the identity claims into
// the echo context, so handlers can read c.Get("userID") / c.Get("userRole")
// without touching JWT types.
func Middleware(secret string) echo.MiddlewareFunc {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &Claims{}
		},
	})

	extract := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if ok {
				if claims, ok := token.Claims.(*Claims); ok {
					c.Set("userID", claims.UserID)
					c.Set("userRole", claims.Role)
				}
			}
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(extract(next))
	}
}

// RequireRole guards routes that only one role may call. Runs after
// Middleware, so the role claim is already on the context.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r, _ := c.Get("userRole").(string); r != role {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: models.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
