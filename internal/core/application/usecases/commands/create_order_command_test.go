package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	items := []order.RequestedItem{mustRequestedItem(t, "sku-milk", "Milk 1L", 2, 500)}

	cmd, err := commands.NewCreateOrderCommand(id, customerID, vendorID, "12 Baker Street", items, mustMoney(t, 1000))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, "12 Baker Street", cmd.DeliveryAddress())
	assert.Len(t, cmd.RequestedItems(), 1)
	assert.Equal(t, int64(1000), cmd.DeliveryFee().Amount())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	items := []order.RequestedItem{mustRequestedItem(t, "sku-milk", "Milk 1L", 2, 500)}
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "12 Baker Street", items, mustMoney(t, 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyDeliveryAddress(t *testing.T) {
	items := []order.RequestedItem{mustRequestedItem(t, "sku-milk", "Milk 1L", 2, 500)}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", items, mustMoney(t, 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCreateOrderCommand_EmptyShoppingList(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "12 Baker Street", nil, mustMoney(t, 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestedItemsAreRequired)
}

func TestNewCreateOrderCommand_UnconstructedItem(t *testing.T) {
	items := []order.RequestedItem{{}}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "12 Baker Street", items, mustMoney(t, 1000))
	require.Error(t, err)
}
