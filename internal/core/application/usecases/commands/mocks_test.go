package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(
	ctx context.Context, ownerID kernel.UUID, page ports.Page,
) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from order.Status, to order.Status,
) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) ListInStatus(
	ctx context.Context, status order.Status, createdBefore time.Time, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, createdBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, req ports.ChargeRequest) (*payment.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Transaction), args.Error(1)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

type MockProviderRegistry struct{ mock.Mock }

func (m *MockProviderRegistry) Resolve(paymentMethod string) (payment.Provider, error) {
	args := m.Called(paymentMethod)
	return args.Get(0).(payment.Provider), args.Error(1)
}

type MockIdempotencyCache struct{ mock.Mock }

func (m *MockIdempotencyCache) Lookup(
	ctx context.Context, ownerID kernel.UUID, key string,
) (kernel.UUID, bool, error) {
	args := m.Called(ctx, ownerID, key)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyCache) Remember(
	ctx context.Context, ownerID kernel.UUID, key string, orderID kernel.UUID,
) error {
	args := m.Called(ctx, ownerID, key, orderID)
	return args.Error(0)
}

// RecordingNotifier captures events on a channel so tests can wait for the
// asynchronous delivery without racing the handler's goroutine.
type RecordingNotifier struct {
	events chan ports.OrderEvent
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{events: make(chan ports.OrderEvent, 8)}
}

func (n *RecordingNotifier) Notify(_ context.Context, event ports.OrderEvent) error {
	n.events <- event
	return nil
}

func (n *RecordingNotifier) WaitForEvent(t *testing.T) ports.OrderEvent {
	t.Helper()
	select {
	case event := <-n.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return ports.OrderEvent{}
	}
}

func (n *RecordingNotifier) AssertNoEvent(t *testing.T) {
	t.Helper()
	select {
	case event := <-n.events:
		t.Fatalf("unexpected notification %q", event.Name)
	case <-time.After(50 * time.Millisecond):
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completedTransaction(t *testing.T, orderID kernel.UUID, amount kernel.Money) *payment.Transaction {
	t.Helper()
	txn, err := payment.NewTransaction(orderID, amount, "USD", payment.Stripe, "")
	require.NoError(t, err)
	require.NoError(t, txn.MarkProcessing())
	require.NoError(t, txn.MarkCompleted())
	return txn
}

func failedTransaction(t *testing.T, orderID kernel.UUID, amount kernel.Money) *payment.Transaction {
	t.Helper()
	txn, err := payment.NewTransaction(orderID, amount, "USD", payment.Stripe, "")
	require.NoError(t, err)
	require.NoError(t, txn.MarkProcessing())
	require.NoError(t, txn.MarkFailed())
	return txn
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return money
}
