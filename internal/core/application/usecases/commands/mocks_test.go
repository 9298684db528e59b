package commands_test

import (
	"context"
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func mustRequestedItem(t *testing.T, itemID, name string, quantity int, priceAmount int64) order.RequestedItem {
	t.Helper()
	item, err := order.NewRequestedItem(itemID, name, quantity, "pcs", mustMoney(t, priceAmount))
	require.NoError(t, err)
	return item
}

// newPendingOrder builds an aggregate fresh from submission, with its
// creation event already drained so handler tests see only their own events.
func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Baker Street",
		[]order.RequestedItem{
			mustRequestedItem(t, "sku-milk", "Milk 1L", 2, 500),
			mustRequestedItem(t, "sku-bread", "Bread", 1, 300),
		},
		mustMoney(t, 1000),
	)
	require.NoError(t, err)
	aggregate.PullEvents()
	return aggregate
}

// newProposedOrder advances a pending order through vendor confirmation.
func newProposedOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newPendingOrder(t)
	confirmed := make([]order.ConfirmedItem, 0, len(aggregate.RequestedItems()))
	itemTotal := kernel.Money{}
	first := true
	for _, requested := range aggregate.RequestedItems() {
		item, err := order.NewConfirmedItem(
			requested.ItemID(),
			requested.Name(),
			requested.Quantity(),
			requested.Unit(),
			nil,
			requested.OriginalEstimatedPrice(),
			"",
			order.Available,
		)
		require.NoError(t, err)
		confirmed = append(confirmed, item)
		lineCost, err := item.LineCost()
		require.NoError(t, err)
		if first {
			itemTotal = lineCost
			first = false
		} else {
			itemTotal, err = itemTotal.Add(lineCost)
			require.NoError(t, err)
		}
	}
	require.NoError(t, aggregate.Confirm(confirmed, itemTotal, "", kernel.NewUUID()))
	aggregate.PullEvents()
	return aggregate
}

// newConfirmedOrder advances a proposed order through customer acceptance.
func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newProposedOrder(t)
	require.NoError(t, aggregate.Accept(kernel.NewUUID()))
	aggregate.PullEvents()
	return aggregate
}

// expectTransition wires the mocks for one successful load-modify-store
// round trip with a single outbox message.
func expectTransition(
	ctx context.Context,
	factory *MockOrderUoWFactory,
	uow *MockOrderUoW,
	repo *MockOrderRepository,
	outbox *MockOutboxRepository,
	aggregate *order.Order,
) {
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}
