package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const apiBase = "https://api.stripe.com/v1"

// Client is a minimal Stripe Checkout client. Stripe's REST API takes
// form-encoded bodies with bracketed keys for nested fields.
type Client struct {
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Stripe client
func NewClient(secretKey string, logger *zap.Logger) *Client {
	return &Client{
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// LineItem is one priced row of a checkout session.
type LineItem struct {
	Name        string
	AmountCents int64
	Currency    string
	Quantity    int
}

// CheckoutSession is the subset of Stripe's session object the shop reads.
type CheckoutSession struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	PaymentStatus   string `json:"payment_status"`
	PaymentIntent   string `json:"payment_intent"`
	CustomerEmail   string `json:"customer_email"`
	CustomerDetails struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"customer_details"`
	Metadata map[string]string `json:"metadata"`
}

// CreateCheckoutSession creates a hosted checkout session for the given line
// items and returns the session with its redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.AmountCents, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	return c.doSession(ctx, http.MethodPost, "/checkout/sessions", form)
}

// GetCheckoutSession fetches a checkout session by id, used to verify payment
// status after the customer returns from Stripe.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	return c.doSession(ctx, http.MethodGet, "/checkout/sessions/"+sessionID, nil)
}

func (c *Client) doSession(ctx context.Context, method, path string, form url.Values) (*CheckoutSession, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBase+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Stripe API error",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return nil, fmt.Errorf("stripe API error: status %d, body: %s", resp.StatusCode, string(raw))
	}

	var session CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &session, nil
}

// Paid reports whether the session's payment completed.
func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == "paid"
}
