package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"audir/pkg/identity"
)

// RequireIdentity reads a Bearer token, verifies it and stores the resolved
// identity in the request context. Every tenant-scoped route sits behind it.
func RequireIdentity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing token"})
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing token"})
			}
			id, err := identity.Parse(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			identity.Store(c, id)
			return next(c)
		}
	}
}
