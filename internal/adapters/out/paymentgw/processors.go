// Package paymentgw implements the payment gateway port against simulated
// provider backends. Each supported provider gets its own processor behind
// a closed dispatch table; swapping a simulation for a real provider SDK
// is local to that processor.
package paymentgw

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/payment"
)

// processor is the per-provider charging backend.
// authorize reports whether the provider approved the charge; an error
// means the provider could not be reached at all.
type processor interface {
	authorize(ctx context.Context, amount kernel.Money) (bool, error)
}

// simulatedProcessor stands in for a real provider SDK. It approves every
// charge up to the configured limit and declines everything above it,
// which gives tests and local runs a deterministic decline path.
type simulatedProcessor struct {
	provider     payment.Provider
	apiKey       string
	declineAbove kernel.Money
}

func newSimulatedProcessor(provider payment.Provider, apiKey string, declineAbove kernel.Money) *simulatedProcessor {
	return &simulatedProcessor{
		provider:     provider,
		apiKey:       apiKey,
		declineAbove: declineAbove,
	}
}

func (p *simulatedProcessor) authorize(_ context.Context, amount kernel.Money) (bool, error) {
	return !amount.GreaterThan(p.declineAbove), nil
}
