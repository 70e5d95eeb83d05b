package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

// In-memory repositories backing the service tests. They mirror the store
// semantics the services rely on: carts come back as copies (as they do from
// the session store), missing carts are empty carts, missing everything else
// is ErrNotFound.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	cp := *p
	cp.Variants = append([]domain.Variant(nil), p.Variants...)
	return &cp, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[p.ID]; !ok {
		return &errors.ErrNotFound{Resource: "product", ID: p.ID.Hex()}
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, size string, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	if size == "" {
		p.Quantity -= qty
		return nil
	}
	for i := range p.Variants {
		if p.Variants[i].Size == size {
			p.Variants[i].Quantity -= qty
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[sessionID]
	if !ok {
		return &domain.Cart{SessionID: sessionID}, nil
	}
	cp := *c
	cp.Lines = append([]domain.CartLine(nil), c.Lines...)
	return &cp, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart.UpdatedAt = time.Now()
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	f.carts[cart.SessionID] = &cp
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, sessionID)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.Hex()}
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.PaymentID == paymentID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: paymentID}
}

func (f *fakeOrderRepo) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Order
	for _, o := range f.orders {
		if o.CustomerEmail == email {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		cp := *o
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "order", ID: id.Hex()}
	}
	o.OrderStatus = status
	return nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *domain.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		f.settings = &domain.Settings{
			ID:         primitive.NewObjectID(),
			ShopName:   "Our Store",
			FooterText: "© 2024. All rights reserved.",
		}
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.settings = &cp
	return nil
}

func newTestRepos() *repository.Repositories {
	return &repository.Repositories{
		Product:  newFakeProductRepo(),
		Cart:     newFakeCartRepo(),
		Order:    newFakeOrderRepo(),
		Settings: &fakeSettingsRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
