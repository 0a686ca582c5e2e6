package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func processingOrder(t *testing.T, id, ownerID kernel.UUID) *order.Order {
	t.Helper()
	o := placedOrder(t, id, ownerID)
	require.NoError(t, o.StartProcessing())
	return o
}

func TestAdvanceFulfillmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceFulfillmentCommand(10, time.Minute)
	require.NoError(t, err)

	pendingOrder := placedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	shippable := processingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	notifier := NewRecordingNotifier()

	repo.On("ListInStatus", ctx, order.Pending, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{pendingOrder}, nil).Once()
	repo.On("UpdateStatus", ctx, pendingOrder.ID(), order.Pending, order.Processing).
		Return(nil).Once()
	repo.On("ListInStatus", ctx, order.Processing, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{shippable}, nil).Once()
	repo.On("UpdateStatus", ctx, shippable.ID(), order.Processing, order.Shipped).
		Return(nil).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(repo, notifier, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	event := notifier.WaitForEvent(t)
	assert.Equal(t, ports.OrderShippedEvent, event.Name)
	assert.True(t, event.Order.ID().IsEqual(shippable.ID()))
	assert.Equal(t, order.Shipped, event.Order.Status())

	repo.AssertExpectations(t)
}

func TestAdvanceFulfillmentCommandHandler_Handle_OneEdgePerSweep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceFulfillmentCommand(10, time.Minute)
	require.NoError(t, err)

	// Old enough to be promoted, but it must not ship in the same sweep.
	dwelled := placedOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	notifier := NewRecordingNotifier()

	listProcessing := repo.On("ListInStatus", ctx, order.Processing, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{}, nil).Once()
	listPending := repo.On("ListInStatus", ctx, order.Pending, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{dwelled}, nil).Once()
	promote := repo.On("UpdateStatus", ctx, dwelled.ID(), order.Pending, order.Processing).
		Return(nil).Once()
	mock.InOrder(listProcessing, listPending, promote)

	h := commands.NewAdvanceFulfillmentCommandHandler(repo, notifier, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertNotCalled(t, "UpdateStatus", ctx, dwelled.ID(), order.Processing, order.Shipped)
	notifier.AssertNoEvent(t)
	repo.AssertExpectations(t)
}

func TestAdvanceFulfillmentCommandHandler_Handle_LostRaceIsSkipped(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceFulfillmentCommand(10, time.Minute)
	require.NoError(t, err)

	// Cancelled between the list and the update.
	contested := placedOrder(t, kernel.NewUUID(), kernel.NewUUID())

	repo := new(MockOrderRepository)
	notifier := NewRecordingNotifier()

	repo.On("ListInStatus", ctx, order.Pending, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{contested}, nil).Once()
	repo.On("UpdateStatus", ctx, contested.ID(), order.Pending, order.Processing).
		Return(errs.NewInvalidStateError(
			order.Cancelled.String(), order.Processing.String(),
		)).Once()
	repo.On("ListInStatus", ctx, order.Processing, mock.AnythingOfType("time.Time"), 10).
		Return([]*order.Order{}, nil).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(repo, notifier, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	notifier.AssertNoEvent(t)
	repo.AssertExpectations(t)
}

func TestAdvanceFulfillmentCommandHandler_Handle_RepositoryFailureAborts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceFulfillmentCommand(10, time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("ListInStatus", ctx, order.Pending, mock.AnythingOfType("time.Time"), 10).
		Return(nil, errors.New("connection reset")).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(repo, NewRecordingNotifier(), discardLogger())
	require.Error(t, h.Handle(ctx, cmd))
}

func TestAdvanceFulfillmentCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.AdvanceFulfillmentCommand
	h := commands.NewAdvanceFulfillmentCommandHandler(
		new(MockOrderRepository), NewRecordingNotifier(), discardLogger(),
	)

	err := h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrAdvanceFulfillmentCommandIsNotConstructed)
}
