package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/payment"
)

// ChargeRequest carries everything a provider needs to attempt a charge.
type ChargeRequest struct {
	OrderID     kernel.UUID
	Amount      kernel.Money
	Currency    string
	Provider    payment.Provider
	CustomerRef string
}

// PaymentGateway defines the contract for charging and refunding orders
// through an external payment provider.
//
// A provider decline is a business outcome: Charge returns a transaction
// in Failed status and a nil error. A non-nil error is reserved for
// infrastructure faults such as an unreachable or misbehaving provider;
// no transaction is returned in that case.
type PaymentGateway interface {
	// Charge attempts to capture the requested amount with the provider.
	// The returned transaction is Completed on approval and Failed on
	// decline.
	Charge(ctx context.Context, req ChargeRequest) (*payment.Transaction, error)

	// Refund returns a previously completed charge identified by its
	// transaction ID. Returns errs.ErrObjectNotFound when the gateway
	// has no record of the transaction and errs.ErrInvalidState when
	// the transaction is not refundable.
	Refund(ctx context.Context, transactionID string) error
}

// ProviderRegistry resolves a caller-supplied payment method name to a
// supported provider. Resolution is case-insensitive.
type ProviderRegistry interface {
	// Resolve maps a payment method name to a provider.
	// Returns errs.ErrValueIsInvalid for unsupported names.
	Resolve(paymentMethod string) (payment.Provider, error)
}
