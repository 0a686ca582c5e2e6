package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Processing, order.Shipped, order.Cancelled, order.Failed,
		} {
			assert.NoError(t, s.Validate(), "status %s should be valid", s)
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.Processing, "processing"},
		{order.Shipped, "shipped"},
		{order.Cancelled, "cancelled"},
		{order.Failed, "failed"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("non-pending statuses cannot be cancelled", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Processing, order.Shipped, order.Cancelled, order.Failed,
		} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", s)
		}
	})
}

func TestStatus_StartProcessing(t *testing.T) {
	t.Run("pending can start processing", func(t *testing.T) {
		newStatus, err := order.Pending.StartProcessing()

		require.NoError(t, err)
		assert.Equal(t, order.Processing, newStatus)
	})

	t.Run("other statuses cannot start processing", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Processing, order.Shipped, order.Cancelled, order.Failed,
		} {
			_, err := s.StartProcessing()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", s)
		}
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("processing can be shipped", func(t *testing.T) {
		newStatus, err := order.Processing.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, newStatus)
	})

	t.Run("other statuses cannot be shipped", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Shipped, order.Cancelled, order.Failed,
		} {
			_, err := s.Ship()
			require.ErrorIs(t, err, errs.ErrInvalidState, "status %s", s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
