package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRejectOrderCommand(id, order.RoleVendor, userID, "out of delivery area")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.RoleVendor, cmd.ActorRole())
	assert.Equal(t, userID, cmd.ActorUserID())
	assert.Equal(t, "out of delivery area", cmd.Reason())
}

func TestNewRejectOrderCommand_MissingReason(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), order.RoleCustomer, kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRejectionReasonIsRequired)
}

func TestNewRejectOrderCommand_AdminRole(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), order.RoleAdmin, kernel.NewUUID(), "reason")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRejectionRoleIsInvalid)
}
