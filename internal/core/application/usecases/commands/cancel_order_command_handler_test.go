package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	existing := placedOrder(t, orderID, ownerID)
	require.NoError(t, existing.AttachPayment("txn_abc123def456"))

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	gateway := new(MockPaymentGateway)
	notifier := NewRecordingNotifier()
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(existing, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Pending, order.Cancelled).Return(nil).Once(),
		gateway.On("Refund", ctx, "txn_abc123def456").Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(repo, gateway, notifier, discardLogger())
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())

	event := notifier.WaitForEvent(t)
	assert.Equal(t, ports.OrderCancelledEvent, event.Name)
	assert.True(t, event.Order.ID().IsEqual(orderID))

	repo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	h := commands.NewCancelOrderCommandHandler(
		repo, new(MockPaymentGateway), NewRecordingNotifier(), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	existing := placedOrder(t, orderID, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(existing, nil).Once()

	h := commands.NewCancelOrderCommandHandler(
		repo, new(MockPaymentGateway), NewRecordingNotifier(), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	existing := placedOrder(t, orderID, ownerID)
	require.NoError(t, existing.StartProcessing())

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(existing, nil).Once()

	h := commands.NewCancelOrderCommandHandler(
		repo, new(MockPaymentGateway), NewRecordingNotifier(), discardLogger(),
	)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCancelOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	existing := placedOrder(t, orderID, ownerID)

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	gateway := new(MockPaymentGateway)
	notifier := NewRecordingNotifier()
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(existing, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Pending, order.Cancelled).
			Return(errs.NewInvalidStateError(
				order.Processing.String(), order.Cancelled.String(),
			)).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(repo, gateway, notifier, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	notifier.AssertNoEvent(t)
	gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_RefundFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	existing := placedOrder(t, orderID, ownerID)
	require.NoError(t, existing.AttachPayment("txn_abc123def456"))

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	gateway := new(MockPaymentGateway)
	notifier := NewRecordingNotifier()
	repo.On("Get", ctx, orderID).Return(existing, nil).Once()
	repo.On("UpdateStatus", ctx, orderID, order.Pending, order.Cancelled).Return(nil).Once()
	gateway.On("Refund", ctx, "txn_abc123def456").
		Return(errors.New("provider unreachable")).Once()

	h := commands.NewCancelOrderCommandHandler(repo, gateway, notifier, discardLogger())
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	notifier.WaitForEvent(t)
}
