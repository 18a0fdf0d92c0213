package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

const buyer = "client-1"

func newTestCartService() (*CartService, *memCartStore, *stubOrderQueue) {
	store := newMemCartStore()
	queue := &stubOrderQueue{}
	svc := NewCartService(store, newStubProductRepo(sampleProducts()...), queue, zerolog.Nop())
	return svc, store, queue
}

func validCheckout() ports.CheckoutInput {
	return ports.CheckoutInput{
		Address:        "Av. Paulista 1000, São Paulo",
		ShippingMethod: domain.ShippingExpress,
		Card: ports.CardInput{
			Number: "4111 1111 1111 1234",
			Holder: "Cliente Teste",
			Expiry: "12/29",
			CVC:    "123",
		},
	}
}

func TestCartService_AddItem_MergesLines(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, buyer, 1, 0); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	cart, err := svc.AddItem(ctx, buyer, 1, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected one line with quantity 3, got %+v", cart.Items)
	}
	if cart.Items[0].Price != 129.9 {
		t.Fatalf("expected price snapshot 129.9, got %v", cart.Items[0].Price)
	}
}

func TestCartService_AddItem_Errors(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, buyer, 99, 1); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.AddItem(ctx, buyer, 2, 3); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCartService_SetQuantity_ZeroRemoves(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, buyer, 1, 1)
	_, _ = svc.AddItem(ctx, buyer, 2, 1)

	cart, err := svc.SetQuantity(ctx, buyer, 1, 4)
	if err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if cart.Quantity(1) != 4 {
		t.Fatalf("expected quantity 4, got %d", cart.Quantity(1))
	}

	cart, err = svc.SetQuantity(ctx, buyer, 1, 0)
	if err != nil {
		t.Fatalf("SetQuantity zero: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != 2 {
		t.Fatalf("expected only product 2 left, got %+v", cart.Items)
	}

	if _, err := svc.SetQuantity(ctx, buyer, 1, 2); err != domain.ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if _, err := svc.RemoveItem(ctx, buyer, 1); err != domain.ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartService_ToggleFavorite(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	cart, on, err := svc.ToggleFavorite(ctx, buyer, 2)
	if err != nil || !on || len(cart.Favorites) != 1 {
		t.Fatalf("expected favorite added, got on=%v favs=%v err=%v", on, cart.Favorites, err)
	}
	cart, on, err = svc.ToggleFavorite(ctx, buyer, 2)
	if err != nil || on || len(cart.Favorites) != 0 {
		t.Fatalf("expected favorite removed, got on=%v favs=%v err=%v", on, cart.Favorites, err)
	}
}

func TestCartService_EmptyCartIsDeleted(t *testing.T) {
	svc, store, _ := newTestCartService()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, buyer, 1, 1)

	if err := svc.Clear(ctx, buyer); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := store.carts[buyer]; ok || store.clears != 1 {
		t.Fatalf("expected stored cart deleted, clears=%d", store.clears)
	}

	_, _, _ = svc.ToggleFavorite(ctx, buyer, 2)
	_, _ = svc.AddItem(ctx, buyer, 1, 1)
	if err := svc.Clear(ctx, buyer); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	left, ok := store.carts[buyer]
	if !ok || len(left.Items) != 0 || len(left.Favorites) != 1 {
		t.Fatalf("expected favorites kept after clear, got %+v (present=%v)", left, ok)
	}

	_, _, _ = svc.ToggleFavorite(ctx, buyer, 2)
	if _, ok := store.carts[buyer]; ok || store.clears != 2 {
		t.Fatalf("expected cart deleted once the last favorite goes, clears=%d", store.clears)
	}

	_, _ = svc.AddItem(ctx, buyer, 1, 1)
	if _, err := svc.Checkout(ctx, buyer, validCheckout()); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if _, ok := store.carts[buyer]; ok || store.clears != 3 {
		t.Fatalf("expected cart deleted after checkout, clears=%d", store.clears)
	}
}

func TestCartService_Quote(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, buyer, 1, 2)
	_, _ = svc.AddItem(ctx, buyer, 2, 1)

	q, err := svc.Quote(ctx, buyer, domain.ShippingStandard)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Subtotal != 359.7 || q.ShippingCost != 15.9 || q.Total != 375.6 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	if _, err := svc.Quote(ctx, buyer, "teleport"); err != domain.ErrInvalidShippingMethod {
		t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
	}
}

func TestCartService_Checkout(t *testing.T) {
	svc, store, queue := newTestCartService()
	ctx := context.Background()
	_, _, _ = svc.ToggleFavorite(ctx, buyer, 1)
	_, _ = svc.AddItem(ctx, buyer, 1, 1)

	order, err := svc.Checkout(ctx, buyer, validCheckout())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.ID == "" || order.CardLast4 != "1234" || order.Total != 154.8 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(queue.orders) != 1 || queue.orders[0].ID != order.ID {
		t.Fatalf("expected order queued for recording")
	}
	left := store.carts[buyer]
	if len(left.Items) != 0 {
		t.Fatalf("expected empty cart after checkout")
	}
	if len(left.Favorites) != 1 {
		t.Fatalf("checkout must keep favorites")
	}
}

func TestCartService_Checkout_Validation(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	if _, err := svc.Checkout(ctx, buyer, validCheckout()); err != domain.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	_, _ = svc.AddItem(ctx, buyer, 1, 1)

	cases := map[string]func(*ports.CheckoutInput){
		"address":     func(in *ports.CheckoutInput) { in.Address = "  " },
		"card.number": func(in *ports.CheckoutInput) { in.Card.Number = "4111" },
		"card.holder": func(in *ports.CheckoutInput) { in.Card.Holder = "" },
		"card.expiry": func(in *ports.CheckoutInput) { in.Card.Expiry = "13/29" },
		"card.cvc":    func(in *ports.CheckoutInput) { in.Card.CVC = "12a" },
	}
	for field, mutate := range cases {
		in := validCheckout()
		mutate(&in)
		_, err := svc.Checkout(ctx, buyer, in)
		var ce *CheckoutError
		if !errors.As(err, &ce) || ce.Field != field {
			t.Fatalf("%s: expected CheckoutError, got %v", field, err)
		}
	}

	in := validCheckout()
	in.ShippingMethod = "drone"
	if _, err := svc.Checkout(ctx, buyer, in); err != domain.ErrInvalidShippingMethod {
		t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
	}
}

func TestCartService_Checkout_QueueFailureDoesNotFailBuyer(t *testing.T) {
	svc, _, queue := newTestCartService()
	queue.err = errors.New("queue full")
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, buyer, 2, 1)

	if _, err := svc.Checkout(ctx, buyer, validCheckout()); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
}

func TestOrderService_Record(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Record(ctx, &domain.Order{ID: "o-1"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert")
	}
	if err := svc.Record(ctx, &domain.Order{}); err == nil {
		t.Fatalf("expected error for order without id")
	}
	repo.err = errStore
	if err := svc.Record(ctx, &domain.Order{ID: "o-2"}); !errors.Is(err, errStore) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
