package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCRe    = regexp.MustCompile(`^\d{3}$`)
)

// CheckoutError reports which checkout field was rejected.
type CheckoutError struct {
	Field string
}

func (e *CheckoutError) Error() string { return "invalid checkout field: " + e.Field }

// CartService keeps a buyer's cart in an injected store and runs the
// simulated checkout.
type CartService struct {
	store    ports.CartStore
	products ports.ProductRepository
	orders   ports.OrderQueue
	log      zerolog.Logger
}

func NewCartService(store ports.CartStore, products ports.ProductRepository, orders ports.OrderQueue, log zerolog.Logger) *CartService {
	return &CartService{store: store, products: products, orders: orders, log: log}
}

func (s *CartService) Get(ctx context.Context, subjectID string) (*domain.Cart, error) {
	return s.store.Load(ctx, subjectID)
}

// AddItem snapshots the current catalog price and merges into an existing line.
func (s *CartService) AddItem(ctx context.Context, subjectID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if cart.Quantity(productID)+quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	cart.Add(domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return s.save(ctx, subjectID, cart)
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, subjectID string, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if quantity > 0 {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.Stock {
			return nil, domain.ErrInsufficientStock
		}
	}
	if err := cart.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return s.save(ctx, subjectID, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, subjectID string, productID int64) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if err := cart.Remove(productID); err != nil {
		return nil, err
	}
	return s.save(ctx, subjectID, cart)
}

// Clear empties the cart but keeps favorites.
func (s *CartService) Clear(ctx context.Context, subjectID string) error {
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return err
	}
	cart.Items = nil
	_, err = s.save(ctx, subjectID, cart)
	return err
}

func (s *CartService) ToggleFavorite(ctx context.Context, subjectID string, productID int64) (*domain.Cart, bool, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, false, err
	}
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, false, err
	}
	on := cart.ToggleFavorite(productID)
	cart, err = s.save(ctx, subjectID, cart)
	if err != nil {
		return nil, false, err
	}
	return cart, on, nil
}

func (s *CartService) Quote(ctx context.Context, subjectID string, method domain.ShippingMethod) (*domain.Quote, error) {
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	q, err := cart.QuoteFor(method)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Checkout validates the shipping and payment steps, produces the order
// confirmation and empties the cart. No payment is taken.
func (s *CartService) Checkout(ctx context.Context, subjectID string, in ports.CheckoutInput) (*domain.Order, error) {
	cart, err := s.store.Load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validateCheckout(in); err != nil {
		return nil, err
	}
	quote, err := cart.QuoteFor(in.ShippingMethod)
	if err != nil {
		return nil, err
	}

	number := strings.ReplaceAll(in.Card.Number, " ", "")
	order := &domain.Order{
		ID:              uuid.NewString(),
		SubjectID:       subjectID,
		Items:           append([]domain.CartItem(nil), cart.Items...),
		Subtotal:        quote.Subtotal,
		ShippingMethod:  quote.ShippingMethod,
		ShippingCost:    quote.ShippingCost,
		Total:           quote.Total,
		ShippingAddress: strings.TrimSpace(in.Address),
		CardLast4:       number[len(number)-4:],
		CreatedAt:       time.Now().UTC(),
	}

	cart.Items = nil
	if _, err := s.save(ctx, subjectID, cart); err != nil {
		return nil, err
	}

	if s.orders != nil {
		if err := s.orders.Enqueue(order); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("order not queued for recording")
		}
	}

	s.log.Info().Str("order_id", order.ID).Str("subject", subjectID).Float64("total", order.Total).Msg("checkout completed")
	return order, nil
}

func validateCheckout(in ports.CheckoutInput) error {
	number := strings.ReplaceAll(in.Card.Number, " ", "")
	switch {
	case strings.TrimSpace(in.Address) == "":
		return &CheckoutError{Field: "address"}
	case !cardNumberRe.MatchString(number):
		return &CheckoutError{Field: "card.number"}
	case strings.TrimSpace(in.Card.Holder) == "":
		return &CheckoutError{Field: "card.holder"}
	case !cardExpiryRe.MatchString(in.Card.Expiry):
		return &CheckoutError{Field: "card.expiry"}
	case !cardCVCRe.MatchString(in.Card.CVC):
		return &CheckoutError{Field: "card.cvc"}
	}
	return nil
}

// save persists the cart. A cart with neither lines nor favorites is
// removed from the store instead.
func (s *CartService) save(ctx context.Context, subjectID string, cart *domain.Cart) (*domain.Cart, error) {
	if len(cart.Items) == 0 && len(cart.Favorites) == 0 {
		if err := s.store.Clear(ctx, subjectID); err != nil {
			return nil, fmt.Errorf("clear cart: %w", err)
		}
		return cart, nil
	}
	if err := s.store.Save(ctx, subjectID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}
