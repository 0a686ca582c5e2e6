package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// Order lifecycle events published to the notifier.
const (
	OrderCreatedEvent   = "order.created"
	OrderCancelledEvent = "order.cancelled"
	OrderShippedEvent   = "order.shipped"
)

// OrderEvent describes a lifecycle change on a single order.
type OrderEvent struct {
	Name  string
	Order *order.Order
}

// Notifier delivers order lifecycle notifications to the owner.
//
// Notification is best effort: callers log and discard errors, and a
// delivery failure never fails the operation that produced the event.
type Notifier interface {
	// Notify delivers a single order event.
	Notify(ctx context.Context, event OrderEvent) error
}
