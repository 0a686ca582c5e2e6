package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney",
)

// Money is a value object that represents a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to avoid the rounding surprises of
// binary floating point when summing order totals.
//
// Money is immutable; arithmetic methods return new values. The zero value of
// Money is invalid and must be constructed via NewMoney, NewMoneyFromFloat,
// or ZeroMoney.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromFloat(10.99)
//	if err != nil {
//	    // handle error
//	}
//	total := price.MulQuantity(2) // 21.98
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// The float is converted through decimal.NewFromFloat, which picks the
// shortest decimal representation, so 10.99 stays 10.99.
// Returns an error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney creates a valid Money value of zero.
// Useful as the starting point when summing amounts.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulQuantity returns the Money value multiplied by an integer quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual reports whether two Money values represent the same amount.
// Comparison is numeric, so 10.5 equals 10.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for presentation at the edges.
// Domain code should keep working with Money to avoid rounding drift.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String returns the amount formatted with two decimal places, e.g. "41.97".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
