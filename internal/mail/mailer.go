package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
)

// Mailer sends order confirmations over plain SMTP. Sending is fire-and-forget
// from the checkout flow: failures are logged and never fail the order.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

// NewMailer creates a new mailer
func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP is configured at all.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

// SendOrderConfirmation emails the customer their order summary.
func (m *Mailer) SendOrderConfirmation(order *domain.Order, shopName string) error {
	if !m.Enabled() {
		m.logger.Debug("SMTP not configured, skipping order confirmation email")
		return nil
	}

	subject := fmt.Sprintf("%s — order %s confirmed", shopName, order.OrderNumber)
	body := orderConfirmationBody(order, shopName)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + order.CustomerEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{order.CustomerEmail}, []byte(msg)); err != nil {
		m.logger.Error("Failed to send order confirmation",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return err
	}

	m.logger.Info("Order confirmation sent",
		zap.String("order_number", order.OrderNumber),
		zap.String("to", order.CustomerEmail),
	)
	return nil
}

func orderConfirmationBody(order *domain.Order, shopName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Thanks for your order at %s!\n\n", shopName)
	fmt.Fprintf(&b, "Order number: %s\n\n", order.OrderNumber)

	for _, item := range order.Items {
		label := item.Name
		if item.Size != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, item.Size)
		}
		fmt.Fprintf(&b, "  %dx %s — $%.2f\n", item.Quantity, label, item.UnitPrice*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "\nTotal: $%.2f\n", order.TotalAmount)
	if order.ShippingAddress.Street != "" {
		fmt.Fprintf(&b, "\nShipping to:\n%s\n%s %s\n%s\n",
			order.ShippingAddress.Street,
			order.ShippingAddress.City,
			order.ShippingAddress.ZipCode,
			order.ShippingAddress.Country,
		)
	}
	b.WriteString("\nWe'll let you know when it ships.\n")
	return b.String()
}
