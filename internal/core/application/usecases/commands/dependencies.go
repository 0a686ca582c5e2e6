// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, orchestration, and persistence.
package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// notifyAsync delivers an order event on a detached context so that
// notification outlives the request that produced it. Delivery is best
// effort; failures are logged and discarded.
func notifyAsync(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, event ports.OrderEvent) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := notifier.Notify(detached, event); err != nil {
			logger.Warn("notification delivery failed",
				"event", event.Name,
				"order_id", event.Order.ID().String(),
				"error", err,
			)
		}
	}()
}
