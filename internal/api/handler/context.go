package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/domain"
)

// ctxClaims returns the verified session claims, or a 401 when the request
// carries none. RBAC normally rejects such requests first.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.SubjectID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return claims, nil
}

// productID parses the :id path parameter.
func productID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidProductID
	}
	return id, nil
}
