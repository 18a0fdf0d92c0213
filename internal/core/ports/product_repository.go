package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Search string // optional: case-insensitive match on name or brand
}

// ProductRepository is the catalog store. Listings are ordered by id ascending.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update applies patch and returns the stored record after the change.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	// Delete removes the record and returns it as it was.
	Delete(ctx context.Context, id int64) (*domain.Product, error)
}
