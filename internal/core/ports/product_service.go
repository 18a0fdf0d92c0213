package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// ProductService exposes catalog reads to everyone and writes to admins.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, claims *domain.SessionClaims, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, claims *domain.SessionClaims, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, claims *domain.SessionClaims, id int64) (*domain.Product, error)
}
