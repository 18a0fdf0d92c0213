package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

var testCookie = middleware.SessionCookie{Name: "sid", TTL: time.Hour}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newCtx builds a request context. claims are injected the way the Session
// middleware would.
func newCtx(e *echo.Echo, method, path, body string, claims *domain.SessionClaims) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		middleware.SetClaims(c, claims)
	}
	return c, rec
}

// ---- auth ----------------------------------------------------------------

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.Identity, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

// ---- products ------------------------------------------------------------

type stubProductService struct {
	products map[int64]*domain.Product
	lastQ    string
}

func newStubProductService() *stubProductService {
	return &stubProductService{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Air Max 90", Brand: "Nike", Price: 129.9, Stock: 5, Description: "**Classic** runner"},
		2: {ID: 2, Name: "Superstar", Brand: "Adidas", Price: 99.9, Stock: 2},
	}}
}

func (s *stubProductService) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	s.lastQ = f.Search
	return []*domain.Product{s.products[1], s.products[2]}, nil
}

func (s *stubProductService) Get(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *stubProductService) Create(_ context.Context, claims *domain.SessionClaims, p *domain.Product) (*domain.Product, error) {
	if !claims.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	p.ID = 3
	return p, nil
}

func (s *stubProductService) Update(_ context.Context, claims *domain.SessionClaims, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if !claims.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	patch.Apply(p)
	return p, nil
}

func (s *stubProductService) Delete(_ context.Context, claims *domain.SessionClaims, id int64) (*domain.Product, error) {
	if !claims.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	delete(s.products, id)
	return p, nil
}

// ---- cart ----------------------------------------------------------------

type stubCartService struct {
	cart     domain.Cart
	subject  string
	checkout ports.CheckoutInput
	err      error
}

func (s *stubCartService) Get(_ context.Context, subjectID string) (*domain.Cart, error) {
	s.subject = subjectID
	if s.err != nil {
		return nil, s.err
	}
	return &s.cart, nil
}

func (s *stubCartService) AddItem(_ context.Context, subjectID string, productID int64, qty int) (*domain.Cart, error) {
	s.subject = subjectID
	if s.err != nil {
		return nil, s.err
	}
	if qty <= 0 {
		qty = 1
	}
	s.cart.Add(domain.CartItem{ProductID: productID, Price: 10, Quantity: qty})
	return &s.cart, nil
}

func (s *stubCartService) SetQuantity(_ context.Context, subjectID string, productID int64, qty int) (*domain.Cart, error) {
	s.subject = subjectID
	if err := s.cart.SetQuantity(productID, qty); err != nil {
		return nil, err
	}
	return &s.cart, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, subjectID string, productID int64) (*domain.Cart, error) {
	s.subject = subjectID
	if err := s.cart.Remove(productID); err != nil {
		return nil, err
	}
	return &s.cart, nil
}

func (s *stubCartService) Clear(_ context.Context, subjectID string) error {
	s.subject = subjectID
	s.cart.Items = nil
	return nil
}

func (s *stubCartService) ToggleFavorite(_ context.Context, subjectID string, productID int64) (*domain.Cart, bool, error) {
	s.subject = subjectID
	on := s.cart.ToggleFavorite(productID)
	return &s.cart, on, nil
}

func (s *stubCartService) Quote(_ context.Context, subjectID string, method domain.ShippingMethod) (*domain.Quote, error) {
	s.subject = subjectID
	q, err := s.cart.QuoteFor(method)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *stubCartService) Checkout(_ context.Context, subjectID string, in ports.CheckoutInput) (*domain.Order, error) {
	s.subject = subjectID
	s.checkout = in
	if s.err != nil {
		return nil, s.err
	}
	q, err := s.cart.QuoteFor(in.ShippingMethod)
	if err != nil {
		return nil, err
	}
	return &domain.Order{ID: "order-1", SubjectID: subjectID, Items: s.cart.Items, Subtotal: q.Subtotal,
		ShippingMethod: q.ShippingMethod, ShippingCost: q.ShippingCost, Total: q.Total, CardLast4: "4242"}, nil
}
