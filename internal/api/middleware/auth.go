package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/api/metrics"
	"github.com/primekart/storefront-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxPrincipal = "principal"
	CtxClaims    = "token_claims"
)

// Auth requires a `Bearer <token>` Authorization header, validates the
// token, and injects the authenticated principal into the request context.
// This is the only way a principal is established; there is no session or
// cookie mechanism. The revoker may be nil, in which case only signature
// and expiry are checked.
func Auth(tokens ports.TokenService, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				metrics.AuthAttemptsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.JTI)
				if err == nil && revoked {
					metrics.AuthAttemptsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
				}
			}

			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxPrincipal, claims.Principal)
			c.Set(CtxClaims, claims)

			return next(c)
		}
	}
}
