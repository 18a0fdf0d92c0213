package ports

import (
	"context"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

// OrderRepository persists confirmed orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
}

// OrderRecorder is the sink the order dispatcher drains into.
type OrderRecorder interface {
	Record(ctx context.Context, order *domain.Order) error
}

// OrderQueue accepts orders for asynchronous recording.
type OrderQueue interface {
	Enqueue(order *domain.Order) error
}
