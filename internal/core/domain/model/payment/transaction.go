package payment

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through the NewTransaction or RestoreTransaction factory methods.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction constructor",
)

// transactionIDHexLength is the number of hex characters after the "txn_" prefix.
const transactionIDHexLength = 12

// NewTransactionID generates a provider-agnostic transaction identifier
// of the form "txn_" followed by 12 hex characters.
func NewTransactionID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "txn_" + hex[:transactionIDHexLength]
}

// Transaction records an attempted charge against a payment provider.
// It carries a back-reference to the order it funds but has its own
// lifecycle, owned by the payment gateway.
type Transaction struct {
	transactionID string
	orderID       kernel.UUID
	amount        kernel.Money
	currency      string
	provider      Provider
	status        Status
	customerID    string

	isConstructed bool
}

// NewTransaction creates a pending transaction for a charge attempt.
// The customer identifier is optional; all other parameters are required.
func NewTransaction(
	orderID kernel.UUID,
	amount kernel.Money,
	currency string,
	provider Provider,
	customerID string,
) (*Transaction, error) {
	if err := errors.Join(
		orderID.Validate(),
		amount.Validate(),
		provider.Validate(),
	); err != nil {
		return nil, err
	}
	if currency == "" {
		return nil, errs.NewValueIsRequiredError("currency")
	}

	return &Transaction{
		transactionID: NewTransactionID(),
		orderID:       orderID,
		amount:        amount,
		currency:      currency,
		provider:      provider,
		status:        StatusPending,
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreTransaction reconstructs a transaction from stored state.
func RestoreTransaction(
	transactionID string,
	orderID kernel.UUID,
	amount kernel.Money,
	currency string,
	provider Provider,
	status Status,
	customerID string,
) (*Transaction, error) {
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionID")
	}
	if currency == "" {
		return nil, errs.NewValueIsRequiredError("currency")
	}
	if err := errors.Join(
		orderID.Validate(),
		amount.Validate(),
		provider.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Transaction{
		transactionID: transactionID,
		orderID:       orderID,
		amount:        amount,
		currency:      currency,
		provider:      provider,
		status:        status,
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// Validate ensures the transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// TransactionID returns the unique transaction identifier.
func (t *Transaction) TransactionID() string {
	return t.transactionID
}

// OrderID returns the identifier of the order this transaction funds.
func (t *Transaction) OrderID() kernel.UUID {
	return t.orderID
}

// Amount returns the charged amount.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Currency returns the ISO currency code of the charge.
func (t *Transaction) Currency() string {
	return t.currency
}

// Provider returns the payment provider that handled the charge.
func (t *Transaction) Provider() Provider {
	return t.provider
}

// Status returns the current transaction status.
func (t *Transaction) Status() Status {
	return t.status
}

// CustomerID returns the optional customer reference, or an empty string.
func (t *Transaction) CustomerID() string {
	return t.customerID
}

// IsCompleted reports whether the provider accepted the charge.
func (t *Transaction) IsCompleted() bool {
	return t.status == StatusCompleted
}

// MarkProcessing records that the charge was sent to the provider.
func (t *Transaction) MarkProcessing() error {
	newStatus, err := t.status.Process()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// MarkCompleted records a successful charge.
func (t *Transaction) MarkCompleted() error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// MarkFailed records a declined charge.
func (t *Transaction) MarkFailed() error {
	newStatus, err := t.status.Fail()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// MarkRefunded records that a completed charge was returned.
// Only completed transactions can be refunded.
func (t *Transaction) MarkRefunded() error {
	newStatus, err := t.status.Refund()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}
