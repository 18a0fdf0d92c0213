package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

func TestCartHandler_RequiresClaims(t *testing.T) {
	e := newEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _ := newCtx(e, http.MethodGet, "/api/cart", "", nil)
	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCartHandler_AddAndGet(t *testing.T) {
	e := newEcho()
	svc := &stubCartService{}
	handler := NewCartHandler(svc)

	c, rec := newCtx(e, http.MethodPost, "/api/cart/items", `{"product_id":1,"quantity":2}`, clientClaims)
	if err := handler.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.subject != "c1" {
		t.Fatalf("expected cart scoped to subject c1, got %q", svc.subject)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || resp.Subtotal != 20 || len(resp.Items) != 1 {
		t.Fatalf("unexpected cart: %+v", resp)
	}
	if resp.Favorites == nil {
		t.Fatalf("favorites must render as an empty list")
	}
}

func TestCartHandler_AddItem_Validation(t *testing.T) {
	e := newEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _ := newCtx(e, http.MethodPost, "/api/cart/items", `{"quantity":2}`, clientClaims)
	err := handler.AddItem(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCartHandler_SetQuantityZeroRemoves(t *testing.T) {
	e := newEcho()
	svc := &stubCartService{cart: domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 10, Quantity: 1}}}}
	handler := NewCartHandler(svc)

	c, rec := newCtx(e, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`, clientClaims)
	if err := handler.SetQuantity(withID(c, "1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp cartResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Items) != 0 {
		t.Fatalf("expected line removed, got %+v", resp.Items)
	}

	c, _ = newCtx(e, http.MethodDelete, "/api/cart/items/1", "", clientClaims)
	if err := handler.RemoveItem(withID(c, "1")); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartHandler_ToggleFavorite(t *testing.T) {
	e := newEcho()
	handler := NewCartHandler(&stubCartService{})

	c, rec := newCtx(e, http.MethodPost, "/api/favorites/7", "", clientClaims)
	if err := handler.ToggleFavorite(withID(c, "7")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp favoriteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Favorite || resp.ProductID != 7 || len(resp.Favorites) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCartHandler_Quote(t *testing.T) {
	e := newEcho()
	svc := &stubCartService{cart: domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 100, Quantity: 1}}}}
	handler := NewCartHandler(svc)

	c, rec := newCtx(e, http.MethodGet, "/api/cart/quote?shipping=urgent", "", clientClaims)
	if err := handler.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var q domain.Quote
	_ = json.Unmarshal(rec.Body.Bytes(), &q)
	if q.ShippingCost != 49.9 || q.Total != 149.9 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	c, rec = newCtx(e, http.MethodGet, "/api/cart/quote", "", clientClaims)
	if err := handler.Quote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &q)
	if q.ShippingMethod != domain.ShippingStandard {
		t.Fatalf("expected standard shipping by default, got %s", q.ShippingMethod)
	}

	c, _ = newCtx(e, http.MethodGet, "/api/cart/quote?shipping=boat", "", clientClaims)
	if err := handler.Quote(c); !errors.Is(err, domain.ErrInvalidShippingMethod) {
		t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	e := newEcho()
	svc := &stubCartService{cart: domain.Cart{Items: []domain.CartItem{{ProductID: 1, Price: 50, Quantity: 2}}}}
	handler := NewCartHandler(svc)

	body := `{"address":"Rua Augusta 500","shipping_method":"express",
		"card":{"number":"4242424242424242","holder":"Cliente","expiry":"08/28","cvc":"321"}}`
	c, rec := newCtx(e, http.MethodPost, "/api/checkout", body, clientClaims)
	if err := handler.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "order-1" || resp.Total != 124.9 || resp.ShippingMethod != domain.ShippingExpress {
		t.Fatalf("unexpected order: %+v", resp)
	}
	if svc.checkout.Card.CVC != "321" || svc.checkout.Address != "Rua Augusta 500" {
		t.Fatalf("checkout input not forwarded: %+v", svc.checkout)
	}
}

func TestCartHandler_Checkout_Validation(t *testing.T) {
	e := newEcho()
	handler := NewCartHandler(&stubCartService{})

	body := `{"address":"","shipping_method":"teleport","card":{"number":"1","holder":"x","expiry":"1","cvc":"12"}}`
	c, _ := newCtx(e, http.MethodPost, "/api/checkout", body, clientClaims)
	err := handler.Checkout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
