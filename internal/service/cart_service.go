package service

import (
	"context"
	"hash/fnv"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

// cartLocks serializes mutations per session. The capacity check and the cart
// write are not one atomic store operation, so two concurrent adds for the
// same session could both pass the check against a stale snapshot; holding the
// session's stripe for the whole read-check-write closes that window.
const cartLockStripes = 64

var cartLocks [cartLockStripes]sync.Mutex

func lockSession(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &cartLocks[h.Sum32()%cartLockStripes]
}

// CartLineView is a cart line joined with its current product record.
type CartLineView struct {
	ProductID       primitive.ObjectID `json:"productId"`
	Name            string             `json:"name"`
	Image           string             `json:"image,omitempty"`
	Size            string             `json:"size,omitempty"`
	UnitPrice       float64            `json:"unitPrice"`
	AdditionalPrice float64            `json:"additionalPrice"`
	Quantity        int                `json:"quantity"`
	LineTotal       float64            `json:"lineTotal"`
}

// CartView is the cart as returned to callers. Totals are computed from the
// catalog at read time, never cached, so price edits show up immediately.
type CartView struct {
	SessionID string         `json:"sessionId"`
	Items     []CartLineView `json:"items"`
	Total     float64        `json:"total"`
}

type cartService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(repos *repository.Repositories, logger *zap.Logger) *cartService {
	return &cartService{
		repos:  repos,
		logger: logger,
	}
}

// Add merges a requested addition into the session cart. Lines are keyed by
// (product, size-or-absence); an addition that would push the line past the
// identity's available stock is rejected whole, leaving the cart untouched.
func (s *cartService) Add(ctx context.Context, sessionID string, productID primitive.ObjectID, qty int, size string) (*CartView, error) {
	if qty < 1 {
		return nil, &errors.ErrValidation{Message: "quantity must be at least 1"}
	}

	mu := lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	product, err := s.repos.Product.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.HasVariants() && size == "" {
		return nil, &errors.ErrValidation{Message: "size is required for this product"}
	}

	available, ok := product.AvailableStock(size)
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "variant", ID: size}
	}

	cart, err := s.repos.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing := -1
	for i, line := range cart.Lines {
		if line.SameIdentity(productID, size) {
			existing = i
			break
		}
	}

	newQty := qty
	if existing >= 0 {
		newQty += cart.Lines[existing].Quantity
	}
	if newQty > available {
		return nil, &errors.ErrCapacityExceeded{
			ProductID: productID.Hex(),
			Size:      size,
			Requested: newQty,
			Available: available,
		}
	}

	if existing >= 0 {
		cart.Lines[existing].Quantity = newQty
	} else {
		delta := 0.0
		if v, ok := product.Variant(size); ok {
			delta = v.AdditionalPrice
		}
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:       productID,
			Quantity:        qty,
			Size:            size,
			AdditionalPrice: delta,
		})
	}

	if err := s.repos.Cart.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// Update sets the absolute quantity for one line. Variant products must name
// the size so the caller addresses a single line, mirroring Remove's contract.
// A quantity of zero or less removes the line.
func (s *cartService) Update(ctx context.Context, sessionID string, productID primitive.ObjectID, qty int, size string) (*CartView, error) {
	mu := lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if qty <= 0 {
		return s.removeLocked(ctx, sessionID, productID, size)
	}

	product, err := s.repos.Product.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.HasVariants() && size == "" {
		return nil, &errors.ErrValidation{Message: "size is required for this product"}
	}

	available, ok := product.AvailableStock(size)
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "variant", ID: size}
	}
	if qty > available {
		return nil, &errors.ErrCapacityExceeded{
			ProductID: productID.Hex(),
			Size:      size,
			Requested: qty,
			Available: available,
		}
	}

	cart, err := s.repos.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, line := range cart.Lines {
		if line.SameIdentity(productID, size) {
			cart.Lines[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		return nil, &errors.ErrNotFound{Resource: "cart_line", ID: productID.Hex()}
	}

	if err := s.repos.Cart.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// Remove deletes the one line whose (product, size-or-absence) identity
// matches exactly. Other variant lines for the same product are untouched.
func (s *cartService) Remove(ctx context.Context, sessionID string, productID primitive.ObjectID, size string) (*CartView, error) {
	mu := lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return s.removeLocked(ctx, sessionID, productID, size)
}

func (s *cartService) removeLocked(ctx context.Context, sessionID string, productID primitive.ObjectID, size string) (*CartView, error) {
	cart, err := s.repos.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := cart.Lines[:0]
	removed := false
	for _, line := range cart.Lines {
		if !removed && line.SameIdentity(productID, size) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	cart.Lines = kept

	if err := s.repos.Cart.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// Clear deletes the whole cart record for the session.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	mu := lockSession(sessionID)
	mu.Lock()
	defer mu.Unlock()
	return s.repos.Cart.Delete(ctx, sessionID)
}

// Get returns the session's cart with totals priced against the live catalog.
func (s *cartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.repos.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// view joins cart lines with their current product records. Lines whose
// product has since been deleted are dropped from the view.
func (s *cartService) view(ctx context.Context, cart *domain.Cart) (*CartView, error) {
	out := &CartView{SessionID: cart.SessionID, Items: []CartLineView{}}

	for _, line := range cart.Lines {
		product, err := s.repos.Product.GetByID(ctx, line.ProductID)
		if err != nil {
			if _, gone := err.(*errors.ErrNotFound); gone {
				s.logger.Warn("Dropping cart line for deleted product",
					zap.String("product_id", line.ProductID.Hex()))
				continue
			}
			return nil, err
		}

		unit := product.Price + line.AdditionalPrice
		item := CartLineView{
			ProductID:       line.ProductID,
			Name:            product.Name,
			Size:            line.Size,
			UnitPrice:       unit,
			AdditionalPrice: line.AdditionalPrice,
			Quantity:        line.Quantity,
			LineTotal:       unit * float64(line.Quantity),
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
		out.Items = append(out.Items, item)
		out.Total += item.LineTotal
	}
	return out, nil
}
