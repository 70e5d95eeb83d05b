package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/mail"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/stripe"
	"github.com/printhaus/shopapi/pkg/errors"
)

// CheckoutInput carries the customer's checkout form.
type CheckoutInput struct {
	Email    string                 `json:"email"`
	Name     string                 `json:"name"`
	Shipping domain.ShippingAddress `json:"shipping"`
}

// CheckoutResult points the customer at the hosted payment page.
type CheckoutResult struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

type orderService struct {
	repos  *repository.Repositories
	cfg    *config.Config
	mailer *mail.Mailer
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, cfg *config.Config, mailer *mail.Mailer, logger *zap.Logger) *orderService {
	return &orderService{
		repos:  repos,
		cfg:    cfg,
		mailer: mailer,
		logger: logger,
	}
}

// stripeClient builds a payment client using the key from settings when the
// admin has configured one, falling back to the environment.
func (s *orderService) stripeClient(ctx context.Context) (*stripe.Client, error) {
	secret := s.cfg.Stripe.SecretKey
	settings, err := s.repos.Settings.Get(ctx)
	if err == nil && settings.StripeSecretKey != "" {
		secret = settings.StripeSecretKey
	}
	if secret == "" {
		return nil, &errors.ErrValidation{Message: "payments are not configured"}
	}
	return stripe.NewClient(secret, s.logger), nil
}

// CreateCheckout validates the session's cart against current stock and opens
// a hosted checkout session for it. The cart session id and shipping details
// ride along as session metadata so confirmation can rebuild the order.
func (s *orderService) CreateCheckout(ctx context.Context, sessionID string, input CheckoutInput) (*CheckoutResult, error) {
	if input.Email == "" {
		return nil, &errors.ErrValidation{Message: "email is required"}
	}

	cart, err := s.repos.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, &errors.ErrValidation{Message: "cart is empty"}
	}

	// Re-check every line against current stock so the customer is told
	// about a sell-out before paying, not after.
	items := make([]stripe.LineItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		product, err := s.repos.Product.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		available, ok := product.AvailableStock(line.Size)
		if !ok || line.Quantity > available {
			return nil, &errors.ErrCapacityExceeded{
				ProductID: line.ProductID.Hex(),
				Size:      line.Size,
				Requested: line.Quantity,
				Available: available,
			}
		}

		name := product.Name
		if line.Size != "" {
			name = fmt.Sprintf("%s (%s)", product.Name, line.Size)
		}
		items = append(items, stripe.LineItem{
			Name:        name,
			AmountCents: toCents(product.Price + line.AdditionalPrice),
			Currency:    "usd",
			Quantity:    line.Quantity,
		})
	}

	shippingJSON, err := json.Marshal(input.Shipping)
	if err != nil {
		return nil, err
	}
	metadata := map[string]string{
		"cart_session":   sessionID,
		"customer_email": input.Email,
		"customer_name":  input.Name,
		"shipping":       string(shippingJSON),
	}

	client, err := s.stripeClient(ctx)
	if err != nil {
		return nil, err
	}

	successURL := s.cfg.PublicURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := s.cfg.PublicURL + "/checkout/cancel"
	session, err := client.CreateCheckoutSession(ctx, items, successURL, cancelURL, metadata)
	if err != nil {
		return nil, &errors.ErrUpstream{Service: "stripe", Err: err}
	}

	s.logger.Info("Checkout session created",
		zap.String("stripe_session", session.ID),
		zap.String("cart_session", sessionID),
	)
	return &CheckoutResult{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// ConfirmOrder verifies that the checkout session was paid, then freezes the
// cart into an immutable order: item snapshots, stock decrements, cart
// cleared, confirmation email fired off in the background. Calling it again
// for the same payment returns the existing order.
func (s *orderService) ConfirmOrder(ctx context.Context, stripeSessionID string) (*domain.Order, error) {
	client, err := s.stripeClient(ctx)
	if err != nil {
		return nil, err
	}

	session, err := client.GetCheckoutSession(ctx, stripeSessionID)
	if err != nil {
		return nil, &errors.ErrUpstream{Service: "stripe", Err: err}
	}
	if !session.Paid() {
		return nil, &errors.ErrValidation{Message: "payment not completed"}
	}

	paymentID := session.PaymentIntent
	if paymentID == "" {
		paymentID = session.ID
	}
	if existing, err := s.repos.Order.GetByPaymentID(ctx, paymentID); err == nil {
		return existing, nil
	}

	cartSession := session.Metadata["cart_session"]
	cart, err := s.repos.Cart.Get(ctx, cartSession)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, &errors.ErrValidation{Message: "cart is empty"}
	}

	email := session.CustomerDetails.Email
	if email == "" {
		email = session.Metadata["customer_email"]
	}
	name := session.CustomerDetails.Name
	if name == "" {
		name = session.Metadata["customer_name"]
	}

	var shipping domain.ShippingAddress
	if raw := session.Metadata["shipping"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &shipping); err != nil {
			s.logger.Warn("Ignoring malformed shipping metadata", zap.Error(err))
		}
	}

	order := &domain.Order{
		OrderNumber:     newOrderNumber(),
		CustomerEmail:   email,
		CustomerName:    name,
		ShippingAddress: shipping,
		PaymentStatus:   domain.PaymentStatusCompleted,
		OrderStatus:     domain.OrderStatusProcessing,
		PaymentID:       paymentID,
	}

	for _, line := range cart.Lines {
		product, err := s.repos.Product.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		unit := product.Price + line.AdditionalPrice
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      product.Name,
			Size:      line.Size,
			UnitPrice: unit,
			Quantity:  line.Quantity,
		})
		order.TotalAmount += unit * float64(line.Quantity)
	}

	if err := s.repos.Order.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if err := s.repos.Product.DecrementStock(ctx, item.ProductID, item.Size, item.Quantity); err != nil {
			// The order is already paid for; an oversold line is an
			// operator problem, not a customer-facing failure.
			s.logger.Error("Failed to decrement stock after order",
				zap.Error(err),
				zap.String("order_number", order.OrderNumber),
				zap.String("product_id", item.ProductID.Hex()),
			)
		}
	}

	if err := s.repos.Cart.Delete(ctx, cartSession); err != nil {
		s.logger.Warn("Failed to clear cart after order", zap.Error(err))
	}

	s.logger.Info("Order confirmed",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.TotalAmount),
	)

	go s.sendConfirmation(order)

	return order, nil
}

func (s *orderService) sendConfirmation(order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shopName := "Our Store"
	if settings, err := s.repos.Settings.Get(ctx); err == nil && settings.ShopName != "" {
		shopName = settings.ShopName
	}
	// Email failures never fail the order.
	_ = s.mailer.SendOrderConfirmation(order, shopName)
}

// OrderHistoryEntry is the customer-facing projection of an order. Payment
// references stay server-side; an email lookup identifies orders, it does not
// authenticate, so the response carries nothing beyond what the customer
// already saw at checkout.
type OrderHistoryEntry struct {
	OrderNumber     string                 `json:"orderNumber"`
	Items           []domain.OrderItem     `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	OrderStatus     domain.OrderStatus     `json:"orderStatus"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// History returns a customer's orders by email, newest first.
func (s *orderService) History(ctx context.Context, email string) ([]OrderHistoryEntry, error) {
	orders, err := s.repos.Order.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	entries := make([]OrderHistoryEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, OrderHistoryEntry{
			OrderNumber:     o.OrderNumber,
			Items:           o.Items,
			TotalAmount:     o.TotalAmount,
			ShippingAddress: o.ShippingAddress,
			OrderStatus:     o.OrderStatus,
			CreatedAt:       o.CreatedAt,
		})
	}
	return entries, nil
}

// UpdateStatus advances an order's fulfilment status.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, &errors.ErrValidation{Message: fmt.Sprintf("unknown order status %q", status)}
	}
	oid, err := parseObjectID(id, "order")
	if err != nil {
		return nil, err
	}
	if err := s.repos.Order.UpdateStatus(ctx, oid, status); err != nil {
		return nil, err
	}
	return s.repos.Order.GetByID(ctx, oid)
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
