package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/printhaus/shopapi/internal/theme"
)

// Variant is a named stock-keeping sub-unit of a product (e.g. "8x10"),
// copied by value from a PrintSize template at product creation.
type Variant struct {
	Size            string  `bson:"size" json:"size"`
	Quantity        int     `bson:"quantity" json:"quantity"`
	AdditionalPrice float64 `bson:"additionalPrice" json:"additionalPrice"`
}

// Product represents a catalog product. Stock is either the flat Quantity
// (when Variants is empty) or the per-variant quantities, never both.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Variants    []Variant          `bson:"variants,omitempty" json:"variants,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasVariants reports whether the product tracks stock per variant.
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant returns the variant with the given size label.
func (p *Product) Variant(size string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].Size == size {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// AvailableStock resolves the stock for a cart-line identity: the flat
// quantity when size is empty, otherwise the matching variant's quantity.
// The second return is false when the identity does not exist on this
// product (a size on a flat-stock product, or an unknown size).
func (p *Product) AvailableStock(size string) (int, bool) {
	if size == "" {
		if p.HasVariants() {
			return 0, false
		}
		return p.Quantity, true
	}
	v, ok := p.Variant(size)
	if !ok {
		return 0, false
	}
	return v.Quantity, true
}

// TotalStock sums stock across the product's representation.
func (p *Product) TotalStock() int {
	if !p.HasVariants() {
		return p.Quantity
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Quantity
	}
	return total
}

// CartLine is one line of a session cart. Two lines are the same line iff
// ProductID and Size (including both empty) match exactly.
type CartLine struct {
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Size            string             `bson:"size,omitempty" json:"size,omitempty"`
	AdditionalPrice float64            `bson:"additionalPrice" json:"additionalPrice"`
}

// SameIdentity reports whether two lines share the (product, size) identity.
func (l CartLine) SameIdentity(productID primitive.ObjectID, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Cart is the per-session list of cart lines, keyed by an opaque session
// identifier. Its only independent lifecycle is the session store's TTL.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PrintSize is a variant template. Independent lifecycle from Product:
// deleting a template never touches products that copied it.
type PrintSize struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Dimensions string             `bson:"dimensions" json:"dimensions"`
	Order      int                `bson:"order" json:"order"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Settings is the singleton shop configuration record.
type Settings struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShopName             string             `bson:"shopName" json:"shopName"`
	ShopLogo             string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
	StripePublishableKey string             `bson:"stripePublishableKey,omitempty" json:"stripePublishableKey,omitempty"`
	StripeSecretKey      string             `bson:"stripeSecretKey,omitempty" json:"-"`
	Theme                theme.Config       `bson:"theme" json:"theme"`
	FooterText           string             `bson:"footerText" json:"footerText"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ShippingAddress is the order's shipping destination.
type ShippingAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// OrderItem is a denormalized snapshot of a cart line at confirmation time.
// Name and UnitPrice are frozen copies; later product edits do not touch them.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	UnitPrice float64            `bson:"unitPrice" json:"unitPrice"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order is an immutable purchase record created at checkout confirmation.
// Only OrderStatus advances after creation; orders are never deleted.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	CustomerEmail   string             `bson:"customerEmail" json:"customerEmail"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus     OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// User is an admin/customer account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
