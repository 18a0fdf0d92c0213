package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/core/access"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// ProductService reads the catalog for anyone and mutates it for admins only.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidProductID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, claims *domain.SessionClaims, p *domain.Product) (*domain.Product, error) {
	if err := access.RequireAdmin(claims); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = 0
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.log.Info().Int64("product_id", created.ID).Str("by", claims.SubjectID).Msg("product created")
	return created, nil
}

// Update validates the patched record before writing it, so a partial update
// can never leave the catalog with a negative price or stock.
func (s *ProductService) Update(ctx context.Context, claims *domain.SessionClaims, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if err := access.RequireAdmin(claims); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, domain.ErrInvalidProductID
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	preview := *current
	patch.Apply(&preview)
	if err := preview.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("product_id", id).Str("by", claims.SubjectID).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, claims *domain.SessionClaims, id int64) (*domain.Product, error) {
	if err := access.RequireAdmin(claims); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, domain.ErrInvalidProductID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("product_id", id).Str("by", claims.SubjectID).Msg("product deleted")
	return deleted, nil
}
