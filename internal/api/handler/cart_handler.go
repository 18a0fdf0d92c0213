package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sneakstreet/storefront/internal/api/metrics"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// CartHandler serves the signed-in buyer's cart, favorites and checkout.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /api/cart.
//
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  cartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	cart, err := h.service.Get(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// AddItem handles POST /api/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      addItemRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.AddItem(c.Request().Context(), claims.SubjectID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// SetQuantity handles PUT /api/cart/items/:id. A quantity of 0 removes the line.
//
// @Summary      Change a line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      int                 true  "Product id"
// @Param        body  body      setQuantityRequest  true  "Quantity"
// @Success      200   {object}  cartResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		return err
	}
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.SetQuantity(c.Request().Context(), claims.SubjectID, id, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveItem handles DELETE /api/cart/items/:id.
//
// @Summary      Remove a line
// @Tags         cart
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  cartResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		return err
	}
	cart, err := h.service.RemoveItem(c.Request().Context(), claims.SubjectID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// Clear handles DELETE /api/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Security     SessionCookie
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Clear(c.Request().Context(), claims.SubjectID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleFavorite handles POST /api/favorites/:id.
//
// @Summary      Toggle a favorite
// @Tags         cart
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  favoriteResponse
// @Router       /api/favorites/{id} [post]
func (h *CartHandler) ToggleFavorite(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := productID(c)
	if err != nil {
		return err
	}
	cart, on, err := h.service.ToggleFavorite(c.Request().Context(), claims.SubjectID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoriteResponse{ProductID: id, Favorite: on, cartResponse: newCartResponse(cart)})
}

// Quote handles GET /api/cart/quote?shipping=<method>.
//
// @Summary      Price the cart
// @Tags         cart
// @Produce      json
// @Security     SessionCookie
// @Param        shipping  query     string  false  "standard, express or urgent"
// @Success      200       {object}  domain.Quote
// @Failure      400       {object}  errorResponse
// @Router       /api/cart/quote [get]
func (h *CartHandler) Quote(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	method := domain.ShippingMethod(c.QueryParam("shipping"))
	if method == "" {
		method = domain.ShippingStandard
	}
	q, err := h.service.Quote(c.Request().Context(), claims.SubjectID, method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// Checkout handles POST /api/checkout. Payment is simulated.
//
// @Summary      Confirm the order
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      checkoutRequest  true  "Shipping and card details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Checkout(c.Request().Context(), claims.SubjectID, ports.CheckoutInput{
		Address:        req.Address,
		ShippingMethod: domain.ShippingMethod(req.ShippingMethod),
		Card: ports.CardInput{
			Number: req.Card.Number,
			Holder: req.Card.Holder,
			Expiry: req.Card.Expiry,
			CVC:    req.Card.CVC,
		},
	})
	if err != nil {
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues(string(order.ShippingMethod)).Inc()
	return c.JSON(http.StatusCreated, orderResponse{
		ID:             order.ID,
		Items:          order.Items,
		Subtotal:       order.Subtotal,
		ShippingMethod: order.ShippingMethod,
		ShippingCost:   order.ShippingCost,
		Total:          order.Total,
		CardLast4:      order.CardLast4,
		CreatedAt:      order.CreatedAt,
	})
}
