package paymentgw

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Gateway implements ports.PaymentGateway over a fixed set of provider
// processors. Completed transactions are kept in an in-memory book so
// they can be refunded later in the process lifetime.
type Gateway struct {
	processors map[payment.Provider]processor
	logger     *slog.Logger

	mu   sync.Mutex
	book map[string]*payment.Transaction
}

// NewGateway creates a gateway with one simulated processor per supported
// provider. Every provider shares the same decline limit; charges above
// it are declined, not errored.
func NewGateway(apiKey string, declineAbove kernel.Money, logger *slog.Logger) *Gateway {
	providers := []payment.Provider{payment.Stripe, payment.PayPal, payment.Square}

	processors := make(map[payment.Provider]processor, len(providers))
	for _, provider := range providers {
		processors[provider] = newSimulatedProcessor(provider, apiKey, declineAbove)
	}

	return &Gateway{
		processors: processors,
		logger:     logger,
		book:       make(map[string]*payment.Transaction),
	}
}

// Charge attempts to capture the requested amount with the provider.
// A decline produces a Failed transaction and a nil error; an unreachable
// provider produces errs.ErrPaymentUnavailable and no transaction.
func (g *Gateway) Charge(ctx context.Context, req ports.ChargeRequest) (*payment.Transaction, error) {
	proc, ok := g.processors[req.Provider]
	if !ok {
		return nil, errs.NewPaymentUnavailableError(req.Provider.String())
	}

	txn, err := payment.NewTransaction(req.OrderID, req.Amount, req.Currency, req.Provider, req.CustomerRef)
	if err != nil {
		return nil, err
	}
	if err = txn.MarkProcessing(); err != nil {
		return nil, err
	}

	approved, err := proc.authorize(ctx, req.Amount)
	if err != nil {
		return nil, errs.NewPaymentUnavailableErrorWithCause(req.Provider.String(), err)
	}

	if !approved {
		if err = txn.MarkFailed(); err != nil {
			return nil, err
		}
		g.logger.Info("charge declined",
			"provider", req.Provider.String(),
			"order_id", req.OrderID.String(),
			"amount", req.Amount.String(),
		)
		return txn, nil
	}

	if err = txn.MarkCompleted(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.book[txn.TransactionID()] = txn
	g.mu.Unlock()

	g.logger.Info("charge completed",
		"provider", req.Provider.String(),
		"order_id", req.OrderID.String(),
		"transaction_id", txn.TransactionID(),
		"amount", req.Amount.String(),
	)

	return txn, nil
}

// Refund returns a previously completed charge.
func (g *Gateway) Refund(_ context.Context, transactionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	txn, ok := g.book[transactionID]
	if !ok {
		return errs.NewObjectNotFoundError("transactionID", transactionID)
	}

	if err := txn.MarkRefunded(); err != nil {
		return err
	}

	g.logger.Info("charge refunded",
		"provider", txn.Provider().String(),
		"transaction_id", transactionID,
	)

	return nil
}
