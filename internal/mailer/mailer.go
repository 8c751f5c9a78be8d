package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/config"
	"github.com/mapcraft/storefront-api/internal/domain"
)

// Result is always returned, success or not, so callers can log the outcome
// without branching on panics or errors crossing this boundary
type Result struct {
	Success bool
	OrderID string
	Err     error
}

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *zap.Logger

	// send is swappable in tests; defaults to smtp.SendMail
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates an SMTP-backed mailer
func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   logger,
		send:     smtp.SendMail,
	}
}

// SendOrderConfirmation renders and dispatches the order confirmation mail.
// It never lets a failure escape: the result carries the error instead.
func (m *Mailer) SendOrderConfirmation(order *domain.Order, items []*domain.OrderItem) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, OrderID: order.ID.String(), Err: fmt.Errorf("mailer panic: %v", r)}
		}
	}()

	subject := fmt.Sprintf("Order confirmation %s", order.ID)
	body := m.renderConfirmation(order, items)

	if err := m.deliver(order.CustomerEmail, subject, body); err != nil {
		return Result{Success: false, OrderID: order.ID.String(), Err: err}
	}

	return Result{Success: true, OrderID: order.ID.String()}
}

// SendShippingUpdate notifies the customer that the order moved to a
// shipped or delivered state
func (m *Mailer) SendShippingUpdate(order *domain.Order) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, OrderID: order.ID.String(), Err: fmt.Errorf("mailer panic: %v", r)}
		}
	}()

	subject := fmt.Sprintf("Your order %s is %s", order.ID, strings.ToLower(string(order.Status)))
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s is now %s.\r\n\r\nThank you for shopping with us!\r\n",
		order.CustomerName, order.ID, strings.ToLower(string(order.Status)),
	)

	if err := m.deliver(order.CustomerEmail, subject, body); err != nil {
		return Result{Success: false, OrderID: order.ID.String(), Err: err}
	}

	return Result{Success: true, OrderID: order.ID.String()}
}

func (m *Mailer) renderConfirmation(order *domain.Order, items []*domain.OrderItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\r\n\r\nThank you for your order! We are processing it now.\r\n\r\n", order.CustomerName)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s, %s) x%d @ %.2f\r\n", item.Name, item.FrameSize, item.FrameType, item.Quantity, item.UnitPrice)
		if item.EngravingText != nil && *item.EngravingText != "" {
			fmt.Fprintf(&b, "  Engraving: %q\r\n", *item.EngravingText)
		}
	}
	fmt.Fprintf(&b, "\r\nOrder total: %.2f\r\n", order.Total)

	return b.String()
}

func (m *Mailer) deliver(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := []byte("To: " + to + "\r\n" +
		"From: " + m.from + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := m.send(m.host+":"+m.port, auth, m.from, []string{to}, msg); err != nil {
		m.logger.Warn("Failed to send mail",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	return nil
}
