package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

const defaultCartTTL = 30 * 24 * time.Hour

// CartStore keeps each buyer's cart as a JSON document.
// Key format: cart:<subject_id>
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore wraps the client. Carts expire ttl after their last write.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

func (s *CartStore) Load(ctx context.Context, subjectID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(subjectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return decodeCart(raw)
}

func (s *CartStore) Save(ctx context.Context, subjectID string, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(subjectID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, subjectID string) error {
	if err := s.client.Del(ctx, cartKey(subjectID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func decodeCart(raw []byte) (*domain.Cart, error) {
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func cartKey(subjectID string) string {
	return "cart:" + subjectID
}
