package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// OrderService persists confirmed orders handed over by the dispatcher.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) Record(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("record order: missing id")
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return fmt.Errorf("record order %s: %w", order.ID, err)
	}
	s.log.Debug().Str("order_id", order.ID).Msg("order recorded")
	return nil
}
