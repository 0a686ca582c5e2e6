package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Cancellation is owner-only and restricted to pending orders; the status
// flip is a compare-and-set write, so two concurrent cancellations (or a
// cancellation racing the fulfillment job) resolve to exactly one winner.
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand(orderID, callerID)
//	cancelled, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, errs.ErrNotAuthorized):
//	    // not the owner
//	case errors.Is(err, errs.ErrInvalidState):
//	    // no longer pending
//	}
type CancelOrderCommandHandler struct {
	orders   ports.OrderRepository
	gateway  ports.PaymentGateway
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:   orders,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes the cancellation command.
//
// Existence is checked before ownership, so an unknown order is reported as
// not found even to a caller who would not own it. After the compare-and-set
// succeeds, the payment refund and the owner notification are best effort.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !existing.IsOwnedBy(cmd.OwnerID()) {
		return nil, errs.NewNotAuthorizedError("order", cmd.OrderID().String())
	}

	if existing.Status() != order.Pending {
		return nil, errs.NewInvalidStateError(existing.Status().String(), order.Cancelled.String())
	}

	// The CAS loses to a concurrent status change; the loser sees the
	// same invalid-state outcome as a plain non-pending order.
	if err = h.orders.UpdateStatus(ctx, cmd.OrderID(), order.Pending, order.Cancelled); err != nil {
		return nil, err
	}

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	h.refundPayment(ctx, existing)
	notifyAsync(ctx, h.notifier, h.logger, ports.OrderEvent{
		Name:  ports.OrderCancelledEvent,
		Order: existing,
	})

	return existing, nil
}

// refundPayment returns the creation charge of a cancelled order.
// Best effort: a refund failure is logged, never surfaced to the caller.
func (h CancelOrderCommandHandler) refundPayment(ctx context.Context, cancelled *order.Order) {
	transactionID := cancelled.PaymentTransactionID()
	if transactionID == nil {
		return
	}

	if err := h.gateway.Refund(ctx, *transactionID); err != nil {
		h.logger.Warn("refund for cancelled order failed",
			"order_id", cancelled.ID().String(),
			"transaction_id", *transactionID,
			"error", err,
		)
	}
}
