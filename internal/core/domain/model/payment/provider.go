package payment

import (
	"strings"

	"ordering/internal/pkg/errs"
)

// Provider identifies a supported payment provider.
// The set is closed and known at compile time; unsupported values fail
// validation before any charge attempt is made.
type Provider int

const (
	// ProviderUnknown represents an invalid or undefined provider.
	// This value (0) helps catch uninitialized Provider values.
	ProviderUnknown Provider = iota

	// Stripe processes card payments.
	Stripe

	// PayPal processes wallet payments.
	PayPal

	// Square processes card payments.
	Square
)

// getProviderStrings returns a map of Provider values to their string representations.
func getProviderStrings() map[Provider]string {
	return map[Provider]string{
		ProviderUnknown: "unknown",
		Stripe:          "stripe",
		PayPal:          "paypal",
		Square:          "square",
	}
}

// getValidProviderStrings returns a map of only valid Provider values.
func getValidProviderStrings() map[Provider]string {
	//nolint:exhaustive // ProviderUnknown is intentionally excluded as it's invalid
	return map[Provider]string{
		Stripe: "stripe",
		PayPal: "paypal",
		Square: "square",
	}
}

// ProviderFromName resolves a provider from its lowercase wire name
// ("stripe", "paypal", "square"). Matching is case-insensitive.
// Returns a validation error for unsupported names.
func ProviderFromName(name string) (Provider, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for provider, str := range getValidProviderStrings() {
		if str == normalized {
			return provider, nil
		}
	}
	return ProviderUnknown, errs.NewValueIsInvalidError("provider")
}

// Validate checks if the Provider value is one of the supported providers.
func (p Provider) Validate() error {
	if _, ok := getValidProviderStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("provider")
	}
	return nil
}

// String returns the wire name of the provider.
// This method implements the fmt.Stringer interface and is safe
// to call on any Provider value, including invalid ones.
func (p Provider) String() string {
	if str, ok := getProviderStrings()[p]; ok {
		return str
	}
	return "unknown"
}
