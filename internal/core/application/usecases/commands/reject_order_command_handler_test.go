package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle_VendorRejectsPending(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewRejectOrderCommand(
		aggregate.ID(), order.RoleVendor, kernel.NewUUID(), "out of delivery area")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewRejectOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.CancelledByVendor, aggregate.Status())
	assert.Equal(t, "out of delivery area", aggregate.VendorRejectionReason())
	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_CustomerRejectsProposal(t *testing.T) {
	ctx := t.Context()
	aggregate := newProposedOrder(t)
	cmd, err := commands.NewRejectOrderCommand(
		aggregate.ID(), order.RoleCustomer, kernel.NewUUID(), "too expensive")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewRejectOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.CancelledByUser, aggregate.Status())
	assert.Equal(t, "too expensive", aggregate.UserRejectionReason())
}

func TestRejectOrderCommandHandler_Handle_CustomerCannotRejectPending(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewRejectOrderCommand(
		aggregate.ID(), order.RoleCustomer, kernel.NewUUID(), "changed my mind")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.PendingVendorConfirmation, aggregate.Status())
}

func TestRejectOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.RejectByVendor("closed today", kernel.NewUUID()))
	aggregate.PullEvents()

	cmd, err := commands.NewRejectOrderCommand(
		aggregate.ID(), order.RoleVendor, kernel.NewUUID(), "again")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
