package handler

import (
	"time"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	User      *domain.Identity `json:"user"`
}

type sessionUser struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	View          string       `json:"view"`
	User          *sessionUser `json:"user,omitempty"`
}

// --- Products ---

type createProductRequest struct {
	Name          string   `json:"name"          validate:"required"`
	Brand         string   `json:"brand"         validate:"required"`
	Model         string   `json:"model"`
	Type          string   `json:"type"`
	Material      string   `json:"material"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"         validate:"gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	Stock         int      `json:"stock"         validate:"gte=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Image         string   `json:"image"`
	Discount      *int     `json:"discount"      validate:"omitempty,gte=0,lte=100"`
}

func (r createProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:          r.Name,
		Brand:         r.Brand,
		Model:         r.Model,
		Type:          r.Type,
		Material:      r.Material,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Stock:         r.Stock,
		Sizes:         nonNil(r.Sizes),
		Colors:        nonNil(r.Colors),
		Image:         r.Image,
		Discount:      r.Discount,
	}
}

// updateProductRequest is a partial record; absent fields are left as they are.
type updateProductRequest struct {
	Name          *string  `json:"name"          validate:"omitempty,min=1"`
	Brand         *string  `json:"brand"`
	Model         *string  `json:"model"`
	Type          *string  `json:"type"`
	Material      *string  `json:"material"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"         validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock"         validate:"omitempty,gte=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Image         *string  `json:"image"`
	Discount      *int     `json:"discount"      validate:"omitempty,gte=0,lte=100"`
}

func (r updateProductRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:          r.Name,
		Brand:         r.Brand,
		Model:         r.Model,
		Type:          r.Type,
		Material:      r.Material,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Stock:         r.Stock,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		Image:         r.Image,
		Discount:      r.Discount,
	}
}

type productDetailResponse struct {
	*domain.Product
	DescriptionHTML string `json:"description_html"`
}

// --- Cart ---

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"gte=0"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type cartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Favorites []int64           `json:"favorites"`
	Count     int               `json:"count"`
	Subtotal  float64           `json:"subtotal"`
}

func newCartResponse(c *domain.Cart) cartResponse {
	return cartResponse{
		Items:     nonNil(c.Items),
		Favorites: nonNil(c.Favorites),
		Count:     c.Count(),
		Subtotal:  c.Subtotal(),
	}
}

type favoriteResponse struct {
	ProductID int64 `json:"product_id"`
	Favorite  bool  `json:"favorite"`
	cartResponse
}

type cardRequest struct {
	Number string `json:"number" validate:"required"`
	Holder string `json:"holder" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVC    string `json:"cvc"    validate:"required,len=3,numeric"`
}

type checkoutRequest struct {
	Address        string      `json:"address"         validate:"required"`
	ShippingMethod string      `json:"shipping_method" validate:"required,oneof=standard express urgent"`
	Card           cardRequest `json:"card"            validate:"required"`
}

type orderResponse struct {
	ID             string                `json:"id"`
	Items          []domain.CartItem     `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	ShippingMethod domain.ShippingMethod `json:"shipping_method"`
	ShippingCost   float64               `json:"shipping_cost"`
	Total          float64               `json:"total"`
	CardLast4      string                `json:"card_last4"`
	CreatedAt      time.Time             `json:"created_at"`
}

// --- Views ---

type homeView struct {
	View      string            `json:"view"`
	Products  []*domain.Product `json:"products"`
	Links     map[string]string `json:"links"`
	CartCount int               `json:"cart_count,omitempty"`
	Favorites []int64           `json:"favorites,omitempty"`
}

type adminView struct {
	View         string            `json:"view"`
	ProductCount int               `json:"product_count"`
	Products     []*domain.Product `json:"products"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
