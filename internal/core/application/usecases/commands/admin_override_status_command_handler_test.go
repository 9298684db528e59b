package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminOverrideStatusCommand_MissingReason(t *testing.T) {
	_, err := commands.NewAdminOverrideStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Confirmed, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOverrideReasonIsRequired)
}

func TestAdminOverrideStatusCommandHandler_Handle_FromTerminalState(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.RejectByVendor("closed today", kernel.NewUUID()))
	aggregate.PullEvents()

	cmd, err := commands.NewAdminOverrideStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.PendingVendorConfirmation, "vendor reopened, reinstating")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewAdminOverrideStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PendingVendorConfirmation, aggregate.Status())
	history := aggregate.StatusHistory()
	last := history[len(history)-1]
	assert.Equal(t, order.RoleAdmin, last.ChangedBy())
	assert.Equal(t, "vendor reopened, reinstating", last.Reason())
	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestAdminOverrideStatusCommandHandler_Handle_UnrecognizedStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)

	cmd, err := commands.NewAdminOverrideStatusCommand(
		aggregate.ID(), kernel.NewUUID(), order.Status("on_hold_fraud_review"), "flagged by payments")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewAdminOverrideStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Status("on_hold_fraud_review"), aggregate.Status())
	assert.False(t, aggregate.Status().IsRecognized())
}
