package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// It charges the payment provider first and creates the order only after a
// successful charge, so a stored order always references a completed payment.
//
// Retried requests are absorbed in two layers: the idempotency cache short
// circuits a retry before any charge, and the deterministic order identifier
// turns a cache miss into an insert conflict that resolves to the original
// order.
type CreateOrderCommandHandler struct {
	orders   ports.OrderRepository
	gateway  ports.PaymentGateway
	registry ports.ProviderRegistry
	cache    ports.IdempotencyCache
	notifier ports.Notifier
	currency string
	logger   *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The currency is the ISO code every charge is denominated in.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	gateway ports.PaymentGateway,
	registry ports.ProviderRegistry,
	cache ports.IdempotencyCache,
	notifier ports.Notifier,
	currency string,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:   orders,
		gateway:  gateway,
		registry: registry,
		cache:    cache,
		notifier: notifier,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the order placement command.
//
// The charge-then-create ordering means a payment decline or provider fault
// leaves no order behind. A retry detected after the charge refunds the
// duplicate transaction best effort and returns the original order.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	provider, err := h.registry.Resolve(cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	orderID := kernel.NewUUID()
	if cmd.IdempotencyKey() != "" {
		orderID = kernel.NewDeterministicUUID(cmd.OwnerID().String(), cmd.IdempotencyKey())

		if existing := h.lookupRetry(ctx, cmd); existing != nil {
			return existing, nil
		}
	}

	total := kernel.ZeroMoney()
	for _, item := range cmd.Items() {
		total = total.Add(item.Subtotal())
	}

	txn, err := h.gateway.Charge(ctx, ports.ChargeRequest{
		OrderID:     orderID,
		Amount:      total,
		Currency:    h.currency,
		Provider:    provider,
		CustomerRef: cmd.OwnerID().String(),
	})
	if err != nil {
		return nil, err
	}
	if !txn.IsCompleted() {
		return nil, errs.NewPaymentDeclinedError(provider.String(), total.String())
	}

	placed, err := order.NewOrder(
		orderID,
		cmd.OwnerID(),
		cmd.Items(),
		cmd.ShippingAddress(),
		cmd.PaymentMethod(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}
	if err = placed.AttachPayment(txn.TransactionID()); err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, placed); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return h.absorbConflict(ctx, cmd, orderID, txn.TransactionID(), err)
		}
		return nil, err
	}

	h.rememberKey(ctx, cmd, orderID)
	notifyAsync(ctx, h.notifier, h.logger, ports.OrderEvent{
		Name:  ports.OrderCreatedEvent,
		Order: placed,
	})

	return placed, nil
}

// lookupRetry consults the idempotency cache and loads the original order
// on a hit. Cache failures are logged and treated as a miss.
func (h CreateOrderCommandHandler) lookupRetry(ctx context.Context, cmd CreateOrderCommand) *order.Order {
	cachedID, found, err := h.cache.Lookup(ctx, cmd.OwnerID(), cmd.IdempotencyKey())
	if err != nil {
		h.logger.Warn("idempotency cache lookup failed", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	existing, err := h.orders.Get(ctx, cachedID)
	if err != nil {
		h.logger.Warn("cached order lookup failed",
			"order_id", cachedID.String(), "error", err)
		return nil
	}
	return existing
}

// absorbConflict resolves an insert conflict caused by a retried request.
// The original order is returned to the caller and the duplicate charge is
// refunded best effort. A conflict with a different owner's order is not a
// retry and surfaces as the original conflict error.
func (h CreateOrderCommandHandler) absorbConflict(
	ctx context.Context,
	cmd CreateOrderCommand,
	orderID kernel.UUID,
	transactionID string,
	conflictErr error,
) (*order.Order, error) {
	existing, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return nil, conflictErr
	}
	if !existing.IsOwnedBy(cmd.OwnerID()) {
		return nil, conflictErr
	}

	if err = h.gateway.Refund(ctx, transactionID); err != nil {
		h.logger.Warn("duplicate charge refund failed",
			"transaction_id", transactionID, "error", err)
	}

	return existing, nil
}

// rememberKey records the created order in the idempotency cache.
// Best effort: a cache failure never fails the placement.
func (h CreateOrderCommandHandler) rememberKey(ctx context.Context, cmd CreateOrderCommand, orderID kernel.UUID) {
	if cmd.IdempotencyKey() == "" {
		return
	}
	if err := h.cache.Remember(ctx, cmd.OwnerID(), cmd.IdempotencyKey(), orderID); err != nil {
		h.logger.Warn("idempotency cache remember failed",
			"order_id", orderID.String(), "error", err)
	}
}
