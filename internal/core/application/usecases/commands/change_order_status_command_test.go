package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Preparing, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Next())
	assert.Nil(t, cmd.DriverID())
}

func TestNewChangeOrderStatusCommand_WithDriver(t *testing.T) {
	driverID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.OutForDelivery, &driverID)
	require.NoError(t, err)
	require.NotNil(t, cmd.DriverID())
	assert.True(t, cmd.DriverID().IsEqual(driverID))
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown, nil)
	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_InvalidDriverID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.OutForDelivery, &invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
