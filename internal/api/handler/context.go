package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/api/middleware"
	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. A
// missing principal means the middleware did not run or the token carried
// no identity; fail closed with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.CtxPrincipal).(domain.Principal)
	if !ok || principal.ID == "" || principal.Email == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized - Invalid token")
	}
	return principal, nil
}

// ctxClaims extracts the full token claims, needed by logout to know the
// token's JTI and remaining lifetime.
func ctxClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims, ok := c.Get(middleware.CtxClaims).(*ports.TokenClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized - Invalid token")
	}
	return claims, nil
}
