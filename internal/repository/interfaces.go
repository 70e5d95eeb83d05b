package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/printhaus/shopapi/internal/domain"
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search   string
	Category string
}

// ProductRepository defines catalog data access methods
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// Categories returns the distinct non-empty category names in use.
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DecrementStock atomically reduces stock for one line identity:
	// the flat quantity when size is empty, the matching variant otherwise.
	DecrementStock(ctx context.Context, id primitive.ObjectID, size string, qty int) error
}

// SettingsRepository defines access to the singleton settings record
type SettingsRepository interface {
	// Get returns the settings record, creating it with defaults on first use.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

// PrintSizeRepository defines print-size template data access methods
type PrintSizeRepository interface {
	List(ctx context.Context) ([]*domain.PrintSize, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PrintSize, error)
	Create(ctx context.Context, size *domain.PrintSize) error
	Update(ctx context.Context, size *domain.PrintSize) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderRepository defines order data access methods
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	// GetByPaymentID looks an order up by payment reference, used to make
	// checkout confirmation idempotent.
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error
}

// UserRepository defines user account data access methods
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	DeleteByEmail(ctx context.Context, email string) error
}

// CartRepository defines session cart access. Backed by the session store,
// not the document database: carts expire with their session TTL.
type CartRepository interface {
	// Get returns the session's cart, or an empty cart when none exists.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Repositories aggregates all repositories
type Repositories struct {
	Product   ProductRepository
	Settings  SettingsRepository
	PrintSize PrintSizeRepository
	Order     OrderRepository
	User      UserRepository
	Cart      CartRepository
}
