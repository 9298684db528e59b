package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_ConfirmsAsRequested(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewConfirmOrderCommand(aggregate.ID(), kernel.NewUUID(), nil, "all in stock")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewItemNegotiator())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PendingUserAcceptance, aggregate.Status())
	require.NotNil(t, aggregate.VendorProposedItemTotalCost())
	assert.Equal(t, int64(1300), aggregate.VendorProposedItemTotalCost().Amount())
	require.NotNil(t, aggregate.VendorProposedTotalCost())
	assert.Equal(t, int64(2300), aggregate.VendorProposedTotalCost().Amount())
	assert.Equal(t, "all in stock", aggregate.VendorOverallNote())
	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_WithAdjustments(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)

	newPrice := mustMoney(t, 550)
	priceBump, err := order.NewItemAdjustment("sku-milk", "", 0, "", order.Available, &newPrice, "price changed")
	require.NoError(t, err)
	outOfStock, err := order.NewItemAdjustment("sku-bread", "", 0, "", order.Unavailable, nil, "sold out")
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(
		aggregate.ID(), kernel.NewUUID(), []order.ItemAdjustment{priceBump, outOfStock}, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectTransition(ctx, factory, uow, repo, outbox, aggregate)

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewItemNegotiator())
	require.NoError(t, h.Handle(ctx, cmd))

	// 2 x 550 for milk; the unavailable bread line is excluded from the total.
	require.NotNil(t, aggregate.VendorProposedItemTotalCost())
	assert.Equal(t, int64(1100), aggregate.VendorProposedItemTotalCost().Amount())
	assert.Len(t, aggregate.VendorConfirmedItems(), 2)
	repo.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_AllLinesUnavailable(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)

	adjustments := make([]order.ItemAdjustment, 0, 2)
	for _, itemID := range []string{"sku-milk", "sku-bread"} {
		adj, err := order.NewItemAdjustment(itemID, "", 0, "", order.Unavailable, nil, "sold out")
		require.NoError(t, err)
		adjustments = append(adjustments, adj)
	}
	cmd, err := commands.NewConfirmOrderCommand(aggregate.ID(), kernel.NewUUID(), adjustments, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewItemNegotiator())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.PendingVendorConfirmation, aggregate.Status())
}

func TestConfirmOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := newConfirmedOrder(t)
	cmd, err := commands.NewConfirmOrderCommand(aggregate.ID(), kernel.NewUUID(), nil, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewItemNegotiator())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestConfirmOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewConfirmOrderCommand(orderID, kernel.NewUUID(), nil, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewItemNegotiator())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
