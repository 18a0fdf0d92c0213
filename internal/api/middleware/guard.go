package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/api/metrics"
	"github.com/sneakstreet/storefront/internal/core/access"
)

// RouteGuard applies access.Authorize to every request before routing.
// Denied requests get a 303 to the decision target. Must run after Session.
func RouteGuard(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if access.Classify(path) == access.Public {
				return next(c)
			}

			claims := ClaimsFrom(c)
			state := access.StateOf(claims).String()
			decision := access.Authorize(path, claims)
			if decision.Allow {
				metrics.AuthorizationDecisionsTotal.WithLabelValues(state, "allow").Inc()
				return next(c)
			}

			metrics.AuthorizationDecisionsTotal.WithLabelValues(state, "redirect").Inc()
			log.Info().
				Str("path", path).
				Str("state", state).
				Str("redirect", decision.Redirect).
				Msg("admin route denied")
			return c.Redirect(http.StatusSeeOther, decision.Redirect)
		}
	}
}
