package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// AdvanceFulfillmentCommandHandler moves orders through the fulfillment
// pipeline in batches: pending orders start processing, and processing
// orders that dwelled long enough are shipped.
//
// Every status flip is a compare-and-set write, so the sweep can run
// concurrently with cancellations (and with itself) without double
// advancing an order: the loser of a race simply skips that order.
type AdvanceFulfillmentCommandHandler struct {
	orders   ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewAdvanceFulfillmentCommandHandler creates a handler for fulfillment sweeps.
func NewAdvanceFulfillmentCommandHandler(
	orders ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes one fulfillment sweep.
// A repository failure aborts the run; an individual lost race does not.
//
// The ship pass runs before the start-processing pass, so an order advances
// at most one edge per sweep: a freshly promoted order is not in the
// processing list that was already fetched, and spends at least one full
// interval in Processing before it ships.
func (h AdvanceFulfillmentCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().Add(-cmd.Dwell())

	if err := h.ship(ctx, cutoff, cmd.BatchSize()); err != nil {
		return err
	}

	return h.startProcessing(ctx, cutoff, cmd.BatchSize())
}

func (h AdvanceFulfillmentCommandHandler) startProcessing(ctx context.Context, cutoff time.Time, limit int) error {
	pending, err := h.orders.ListInStatus(ctx, order.Pending, cutoff, limit)
	if err != nil {
		return err
	}

	for _, pendingOrder := range pending {
		err = h.orders.UpdateStatus(ctx, pendingOrder.ID(), order.Pending, order.Processing)
		if errors.Is(err, errs.ErrInvalidState) {
			// Lost to a concurrent cancellation; the order is no
			// longer ours to advance.
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (h AdvanceFulfillmentCommandHandler) ship(ctx context.Context, cutoff time.Time, limit int) error {
	processing, err := h.orders.ListInStatus(ctx, order.Processing, cutoff, limit)
	if err != nil {
		return err
	}

	for _, processingOrder := range processing {
		err = h.orders.UpdateStatus(ctx, processingOrder.ID(), order.Processing, order.Shipped)
		if errors.Is(err, errs.ErrInvalidState) {
			continue
		}
		if err != nil {
			return err
		}

		if err = processingOrder.Ship(); err != nil {
			return err
		}

		notifyAsync(ctx, h.notifier, h.logger, ports.OrderEvent{
			Name:  ports.OrderShippedEvent,
			Order: processingOrder,
		})
	}

	return nil
}
