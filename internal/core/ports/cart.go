package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// CartStore persists a buyer's cart. Load returns an empty cart when none is stored.
type CartStore interface {
	Load(ctx context.Context, subjectID string) (*domain.Cart, error)
	Save(ctx context.Context, subjectID string, cart *domain.Cart) error
	Clear(ctx context.Context, subjectID string) error
}

// CardInput is the simulated payment card captured at checkout.
type CardInput struct {
	Number string
	Holder string
	Expiry string // MM/YY
	CVC    string
}

// CheckoutInput carries the shipping and payment step of checkout.
type CheckoutInput struct {
	Address        string
	ShippingMethod domain.ShippingMethod
	Card           CardInput
}

// CartService implements cart, favorites and simulated checkout for a subject.
type CartService interface {
	Get(ctx context.Context, subjectID string) (*domain.Cart, error)
	AddItem(ctx context.Context, subjectID string, productID int64, quantity int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, subjectID string, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, subjectID string, productID int64) (*domain.Cart, error)
	Clear(ctx context.Context, subjectID string) error
	ToggleFavorite(ctx context.Context, subjectID string, productID int64) (*domain.Cart, bool, error)
	Quote(ctx context.Context, subjectID string, method domain.ShippingMethod) (*domain.Quote, error)
	Checkout(ctx context.Context, subjectID string, input CheckoutInput) (*domain.Order, error)
}
