package paymentgw

import (
	"ordering/internal/core/domain/model/payment"
)

// StaticRegistry implements ports.ProviderRegistry over the closed set of
// providers the gateway ships with.
type StaticRegistry struct{}

// NewStaticRegistry creates a registry for the built-in providers.
func NewStaticRegistry() StaticRegistry {
	return StaticRegistry{}
}

// Resolve maps a payment method name to a provider, case-insensitively.
func (StaticRegistry) Resolve(paymentMethod string) (payment.Provider, error) {
	return payment.ProviderFromName(paymentMethod)
}
