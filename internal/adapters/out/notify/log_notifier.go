// Package notify implements the notifier port. The shipped implementation
// writes structured log records instead of sending real mail; the subject
// lines match what a mail-backed notifier would send.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// LogNotifier delivers order notifications to the application log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify writes one log record per order event.
func (n *LogNotifier) Notify(_ context.Context, event ports.OrderEvent) error {
	if event.Order == nil {
		return errs.NewValueIsRequiredError("event.Order")
	}

	n.logger.Info("order notification",
		"event", event.Name,
		"order_id", event.Order.ID().String(),
		"owner_id", event.Order.OwnerID().String(),
		"subject", subjectFor(event),
	)

	return nil
}

// subjectFor renders the mail subject line for an event.
func subjectFor(event ports.OrderEvent) string {
	orderID := event.Order.ID().String()

	switch event.Name {
	case ports.OrderCreatedEvent:
		return fmt.Sprintf("Order Confirmation - #%s", orderID)
	case ports.OrderShippedEvent:
		return fmt.Sprintf("Your Order #%s Has Shipped!", orderID)
	case ports.OrderCancelledEvent:
		return fmt.Sprintf("Your Order #%s Has Been Cancelled", orderID)
	default:
		return fmt.Sprintf("Update on Order #%s", orderID)
	}
}
