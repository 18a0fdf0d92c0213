package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

// ---- users ---------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	if existing, ok := r.users[copy.Email]; ok {
		copy.ID = existing.ID
	} else if copy.ID == "" {
		copy.ID = "id-" + copy.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

// ---- products ------------------------------------------------------------

type stubProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newStubProductRepo(seed ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[int64]*domain.Product), nextID: 1}
	for _, p := range seed {
		clone := *p
		r.products[p.ID] = &clone
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *stubProductRepo) List(_ context.Context, _ ports.ProductFilter) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	patch.Apply(p)
	out := *p
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	delete(r.products, id)
	return p, nil
}

// ---- carts ---------------------------------------------------------------

type memCartStore struct {
	carts  map[string]domain.Cart
	clears int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]domain.Cart)}
}

func (s *memCartStore) Load(_ context.Context, subjectID string) (*domain.Cart, error) {
	c := s.carts[subjectID]
	c.Items = append([]domain.CartItem(nil), c.Items...)
	c.Favorites = append([]int64(nil), c.Favorites...)
	return &c, nil
}

func (s *memCartStore) Save(_ context.Context, subjectID string, cart *domain.Cart) error {
	s.carts[subjectID] = *cart
	return nil
}

func (s *memCartStore) Clear(_ context.Context, subjectID string) error {
	s.clears++
	delete(s.carts, subjectID)
	return nil
}

// ---- orders --------------------------------------------------------------

type stubOrderQueue struct {
	mu     sync.Mutex
	orders []*domain.Order
	err    error
}

func (q *stubOrderQueue) Enqueue(o *domain.Order) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.orders = append(q.orders, o)
	return nil
}

type stubOrderRepo struct {
	inserted []*domain.Order
	err      error
}

func (r *stubOrderRepo) Insert(_ context.Context, o *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, o)
	return nil
}

var errStore = errors.New("store unavailable")
