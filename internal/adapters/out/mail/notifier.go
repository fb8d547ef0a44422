// Package mail implements the outbound notification port over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"withus/internal/core/domain/model/item"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	gomail "github.com/wneessen/go-mail"
)

// Config holds the SMTP connection settings. An empty Host disables
// delivery: every notification is logged and dropped, which keeps local
// development working without a mail server.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// SMTPNotifier sends notification emails with go-mail. All methods are
// best-effort from the caller's point of view; a returned error carries
// delivery detail for logging only.
type SMTPNotifier struct {
	config Config
	client *gomail.Client
	logger *slog.Logger
}

// NewSMTPNotifier creates a notifier from the given SMTP settings.
func NewSMTPNotifier(config Config, logger *slog.Logger) (*SMTPNotifier, error) {
	notifier := &SMTPNotifier{config: config, logger: logger}
	if config.Host == "" {
		logger.Warn("smtp host not configured, notifications will be logged and dropped")
		return notifier, nil
	}

	client, err := gomail.NewClient(config.Host,
		gomail.WithPort(config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(config.Username),
		gomail.WithPassword(config.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	notifier.client = client

	return notifier, nil
}

// OrderPlaced tells the shop administrator that a new order arrived.
func (n *SMTPNotifier) OrderPlaced(
	ctx context.Context, o *order.Order, u *user.User, i *item.Item,
) error {
	subject := fmt.Sprintf("New order: %d x %s", o.Quantity(), i.Name())
	body := fmt.Sprintf(
		"Customer %s <%s> placed an order.\n\n"+
			"Item: %s\nQuantity: %d\nTotal: %.2f\nService: %s\nOrder ID: %s\n",
		u.Name(), u.Email(),
		i.Name(), o.Quantity(), o.TotalPrice(), o.ServiceType(), o.ID(),
	)
	if o.DeliveryAddress() != "" {
		body += fmt.Sprintf("Delivery address: %s\n", o.DeliveryAddress())
	}
	if o.ScheduledTime() != nil {
		body += fmt.Sprintf("Scheduled: %s\n", o.ScheduledTime().Format("2006-01-02 15:04"))
	}

	return n.send(ctx, n.config.AdminEmail, subject, body)
}

// OrderStatusChanged tells the owning user about the new order status.
func (n *SMTPNotifier) OrderStatusChanged(
	ctx context.Context, o *order.Order, u *user.User,
) error {
	subject := fmt.Sprintf("Your order is now %s", o.Status())
	body := fmt.Sprintf(
		"Hi %s,\n\nyour order %s has been moved to status %q.\n",
		u.Name(), o.ID(), o.Status(),
	)
	if o.Status() == order.Cancelled {
		body += fmt.Sprintf("Reason: %s\n", o.CancellationReason())
	}

	return n.send(ctx, u.Email(), subject, body)
}

// PasswordReset sends the user their password reset link.
func (n *SMTPNotifier) PasswordReset(
	ctx context.Context, u *user.User, resetLink string,
) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nfollow this link to reset your password:\n\n%s\n\n"+
			"If you did not request a reset, ignore this message.\n",
		u.Name(), resetLink,
	)

	return n.send(ctx, u.Email(), "Password reset", body)
}

// StockAlert sends the administrator the low-stock report.
func (n *SMTPNotifier) StockAlert(ctx context.Context, lines []ports.StockAlertLine) error {
	var b strings.Builder
	b.WriteString("The following items are running low on stock:\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "  %s: %d left\n", line.ItemName, line.Stock)
	}

	return n.send(ctx, n.config.AdminEmail, "Low stock alert", b.String())
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {
	if n.client == nil {
		n.logger.Info("dropping notification, smtp disabled",
			"to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.config.From); err != nil {
		return fmt.Errorf("set sender %q: %w", n.config.From, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %q: %w", to, err)
	}

	return nil
}
