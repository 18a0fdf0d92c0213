package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/access"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// ViewHandler builds the page models the storefront UI renders. Branching
// between guest, client and admin uses the same claims the route guard saw.
type ViewHandler struct {
	products ports.ProductService
	carts    ports.CartService
	log      zerolog.Logger
}

func NewViewHandler(products ports.ProductService, carts ports.CartService, log zerolog.Logger) *ViewHandler {
	return &ViewHandler{products: products, carts: carts, log: log}
}

// Home handles GET /.
func (h *ViewHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := h.products.List(ctx, ports.ProductFilter{Search: c.QueryParam("q")})
	if err != nil {
		return err
	}

	claims := middleware.ClaimsFrom(c)
	state := access.StateOf(claims)
	view := homeView{View: state.String(), Products: products, Links: map[string]string{}}

	switch state {
	case access.Unauthenticated:
		view.Links["login"] = access.LoginPath
	case access.AuthenticatedAdmin:
		view.Links["admin"] = "/admin"
		view.Links["logout"] = "/api/auth/logout"
	case access.AuthenticatedClient:
		view.Links["cart"] = "/api/cart"
		view.Links["logout"] = "/api/auth/logout"
		cart, err := h.carts.Get(ctx, claims.SubjectID)
		if err != nil {
			h.log.Warn().Err(err).Str("subject", claims.SubjectID).Msg("cart unavailable for home view")
			break
		}
		view.CartCount = cart.Count()
		view.Favorites = cart.Favorites
	}

	return c.JSON(http.StatusOK, view)
}

// Login handles GET /login. Signed-in callers are sent home.
func (h *ViewHandler) Login(c echo.Context) error {
	if access.StateOf(middleware.ClaimsFrom(c)) != access.Unauthenticated {
		return c.Redirect(http.StatusSeeOther, access.HomePath)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"view":   "login",
		"action": "/api/auth/login",
	})
}

// Admin handles GET /admin and everything below it. The route guard has
// already rejected non-admins.
func (h *ViewHandler) Admin(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), ports.ProductFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminView{
		View:         "admin",
		ProductCount: len(products),
		Products:     products,
	})
}
