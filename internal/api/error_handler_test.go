package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/service"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "price must be at least 0"), 400, "price must be at least 0"},
		{"credentials", domain.ErrInvalidCredentials, 401, "invalid credentials"},
		{"session", domain.ErrSessionInvalid, 401, "authentication required"},
		{"role", domain.ErrUnauthorized, 403, "forbidden"},
		{"bad id", domain.ErrInvalidProductID, 400, "invalid ID"},
		{"missing product", fmt.Errorf("lookup: %w", domain.ErrProductNotFound), 404, "product not found"},
		{"stock", domain.ErrInsufficientStock, 409, "insufficient stock"},
		{"checkout", &service.CheckoutError{Field: "card.cvc"}, 422, "invalid checkout field: card.cvc"},
		{"empty cart", domain.ErrEmptyCart, 422, "cart is empty"},
		{"unexpected", errors.New("mongo exploded at 10.0.0.5"), 500, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, body.Error)
			}
		})
	}
}
