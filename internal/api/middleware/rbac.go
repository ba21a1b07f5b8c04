package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// RequireAdmin rejects any principal without the admin role. It must run
// after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(CtxPrincipal).(domain.Principal)
			if !ok || !principal.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Admin role required")
			}
			return next(c)
		}
	}
}
