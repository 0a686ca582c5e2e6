package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, ownerID, cmd.OwnerID())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("rejects invalid owner id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
