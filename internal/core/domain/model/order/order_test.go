package order_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustRequestedItem(t *testing.T, id, name string, qty int, price int64) order.RequestedItem {
	t.Helper()
	item, err := order.NewRequestedItem(id, name, qty, "pcs", mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func mustConfirmedItem(
	t *testing.T,
	id, name string,
	qty int,
	original *kernel.Money,
	confirmed int64,
	availability order.AvailabilityStatus,
) order.ConfirmedItem {
	t.Helper()
	item, err := order.NewConfirmedItem(id, name, qty, "pcs", original, mustMoney(t, confirmed), "", availability)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Baker Street",
		[]order.RequestedItem{mustRequestedItem(t, "a", "Milk", 2, 500)},
		mustMoney(t, 1000),
	)
	require.NoError(t, err)
	return o
}

// confirmTestOrder drives an order to pending_user_acceptance with one
// available line at the given confirmed price.
func confirmTestOrder(t *testing.T, o *order.Order, confirmedPrice int64) {
	t.Helper()
	original := mustMoney(t, 500)
	items := []order.ConfirmedItem{
		mustConfirmedItem(t, "a", "Milk", 2, &original, confirmedPrice, order.Available),
	}
	itemTotal := mustMoney(t, confirmedPrice*2)
	require.NoError(t, o.Confirm(items, itemTotal, "", kernel.NewUUID()))
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending vendor confirmation", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingVendorConfirmation, o.Status())
		assert.Len(t, o.RequestedItems(), 1)
		assert.Empty(t, o.VendorConfirmedItems())
		assert.Nil(t, o.VendorProposedTotalCost())
		assert.Nil(t, o.FinalAgreedTotalCost())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should compute initial cost from items plus delivery fee", func(t *testing.T) {
		o := newTestOrder(t)

		// 2 x 500 + 1000 delivery fee
		assert.Equal(t, int64(2000), o.InitialOrderCost().Amount())
	})

	t.Run("should seed history with a system entry", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.PendingVendorConfirmation, history[0].Status())
		assert.Equal(t, order.RoleSystem, history[0].ChangedBy())
		assert.Nil(t, history[0].UserID())
	})

	t.Run("should raise a status changed event", func(t *testing.T) {
		o := newTestOrder(t)

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.PendingVendorConfirmation, events[0].NewStatus)
		assert.Equal(t, order.RoleSystem, events[0].ActorRole)
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should fail without requested items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"12 Baker Street", nil, mustMoney(t, 1000),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without delivery address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", []order.RequestedItem{mustRequestedItem(t, "a", "Milk", 2, 500)}, mustMoney(t, 1000),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid party ids", func(t *testing.T) {
		var invalid kernel.UUID
		_, err := order.NewOrder(
			invalid, kernel.NewUUID(), kernel.NewUUID(),
			"12 Baker Street", []order.RequestedItem{mustRequestedItem(t, "a", "Milk", 2, 500)}, mustMoney(t, 1000),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should move to pending user acceptance and set proposed totals", func(t *testing.T) {
		o := newTestOrder(t)

		confirmTestOrder(t, o, 500)

		assert.Equal(t, order.PendingUserAcceptance, o.Status())
		require.NotNil(t, o.VendorProposedTotalCost())
		// 2 x 500 items + 1000 delivery fee
		assert.Equal(t, int64(2000), o.VendorProposedTotalCost().Amount())
		assert.Equal(t, int64(1000), o.VendorProposedItemTotalCost().Amount())
		assert.Len(t, o.VendorConfirmedItems(), 1)
		assert.Nil(t, o.FinalAgreedTotalCost())
	})

	t.Run("should append a vendor history entry", func(t *testing.T) {
		o := newTestOrder(t)

		confirmTestOrder(t, o, 500)

		history := o.StatusHistory()
		require.Len(t, history, 2)
		assert.Equal(t, order.PendingUserAcceptance, history[1].Status())
		assert.Equal(t, order.RoleVendor, history[1].ChangedBy())
		require.NotNil(t, history[1].UserID())
	})

	t.Run("should notify the customer", func(t *testing.T) {
		o := newTestOrder(t)
		customerID := o.CustomerID()
		o.PullEvents()

		confirmTestOrder(t, o, 500)

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.True(t, events[0].RecipientPartyID.IsEqual(customerID))
	})

	t.Run("should fail when every item is unavailable", func(t *testing.T) {
		o := newTestOrder(t)
		original := mustMoney(t, 500)
		items := []order.ConfirmedItem{
			mustConfirmedItem(t, "a", "Milk", 2, &original, 500, order.Unavailable),
		}

		err := o.Confirm(items, mustMoney(t, 0), "", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "no available or substituted line")
		assert.Equal(t, order.PendingVendorConfirmation, o.Status())
		assert.Empty(t, o.VendorConfirmedItems())
		assert.Nil(t, o.VendorProposedTotalCost())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should accept a set with only a substituted line", func(t *testing.T) {
		o := newTestOrder(t)
		original := mustMoney(t, 500)
		items := []order.ConfirmedItem{
			mustConfirmedItem(t, "a", "Oat Milk", 2, &original, 600, order.SubstitutedByVendor),
		}

		require.NoError(t, o.Confirm(items, mustMoney(t, 1200), "", kernel.NewUUID()))

		assert.Equal(t, int64(2200), o.VendorProposedTotalCost().Amount())
	})

	t.Run("should fail with empty item set", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Confirm(nil, mustMoney(t, 0), "", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("should fail from a non-matching status and leave the order unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)
		historyLen := len(o.StatusHistory())

		original := mustMoney(t, 500)
		items := []order.ConfirmedItem{
			mustConfirmedItem(t, "a", "Milk", 2, &original, 500, order.Available),
		}
		err := o.Confirm(items, mustMoney(t, 1000), "", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.PendingUserAcceptance, o.Status())
		assert.Len(t, o.StatusHistory(), historyLen)
	})

	t.Run("should store the overall note", func(t *testing.T) {
		o := newTestOrder(t)
		original := mustMoney(t, 500)
		items := []order.ConfirmedItem{
			mustConfirmedItem(t, "a", "Milk", 2, &original, 500, order.Available),
		}

		require.NoError(t, o.Confirm(items, mustMoney(t, 1000), "fresh stock arrives at noon", kernel.NewUUID()))

		assert.Equal(t, "fresh stock arrives at noon", o.VendorOverallNote())
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should freeze the proposed totals", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)

		require.NoError(t, o.Accept(kernel.NewUUID()))

		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.FinalAgreedTotalCost())
		assert.Equal(t, int64(2000), o.FinalAgreedTotalCost().Amount())
		assert.Equal(t, int64(1000), o.FinalAgreedItemTotalCost().Amount())
		assert.True(t, o.FinalAgreedTotalCost().IsEqual(*o.VendorProposedTotalCost()))
	})

	t.Run("should keep frozen totals stable across reads", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		first := o.FinalAgreedTotalCost()
		second := o.FinalAgreedTotalCost()

		assert.Equal(t, first.Amount(), second.Amount())
		assert.Equal(t, int64(2000), second.Amount())
	})

	t.Run("should fail before vendor confirmation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.FinalAgreedTotalCost())
	})

	t.Run("should fail when an override skipped the vendor confirmation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminOverride(order.PendingUserAcceptance, "support escalation", kernel.NewUUID()))

		err := o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "vendorProposedTotalCost")
		assert.Equal(t, order.PendingUserAcceptance, o.Status())
		assert.Nil(t, o.FinalAgreedTotalCost())
		assert.Nil(t, o.FinalAgreedItemTotalCost())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("vendor should reject a pending order with a reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RejectByVendor("store closed for inventory", kernel.NewUUID()))

		assert.Equal(t, order.CancelledByVendor, o.Status())
		assert.Equal(t, "store closed for inventory", o.VendorRejectionReason())

		history := o.StatusHistory()
		assert.Equal(t, "store closed for inventory", history[len(history)-1].Reason())
	})

	t.Run("vendor rejection should require a reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.RejectByVendor("", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.PendingVendorConfirmation, o.Status())
	})

	t.Run("customer should reject a proposed order with a reason", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 800)

		require.NoError(t, o.RejectByUser("price increase too high", kernel.NewUUID()))

		assert.Equal(t, order.CancelledByUser, o.Status())
		assert.Equal(t, "price increase too high", o.UserRejectionReason())
	})

	t.Run("customer should not reject an already confirmed order", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		err := o.RejectByUser("changed my mind", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Fulfillment(t *testing.T) {
	acceptedOrder := func(t *testing.T) *order.Order {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)
		require.NoError(t, o.Accept(kernel.NewUUID()))
		return o
	}

	t.Run("should walk the fulfillment path", func(t *testing.T) {
		o := acceptedOrder(t)
		vendorID := kernel.NewUUID()

		require.NoError(t, o.StartShopping(vendorID))
		assert.Equal(t, order.Shopping, o.Status())

		require.NoError(t, o.MarkOutForDelivery(vendorID))
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.MarkDelivered(vendorID))
		assert.Equal(t, order.Delivered, o.Status())

		assert.Len(t, o.StatusHistory(), 6)
	})

	t.Run("should keep status equal to the last history entry", func(t *testing.T) {
		o := acceptedOrder(t)
		vendorID := kernel.NewUUID()

		steps := []func() error{
			func() error { return o.StartShopping(vendorID) },
			func() error { return o.MarkOutForDelivery(vendorID) },
			func() error { return o.MarkDelivered(vendorID) },
		}
		for _, step := range steps {
			require.NoError(t, step())
			history := o.StatusHistory()
			assert.Equal(t, o.Status(), history[len(history)-1].Status())
		}
	})

	t.Run("should keep history timestamps non-decreasing", func(t *testing.T) {
		o := acceptedOrder(t)
		vendorID := kernel.NewUUID()
		require.NoError(t, o.StartShopping(vendorID))
		require.NoError(t, o.MarkOutForDelivery(vendorID))
		require.NoError(t, o.MarkDelivered(vendorID))

		history := o.StatusHistory()
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].Timestamp().Before(history[i-1].Timestamp()))
		}
	})

	t.Run("should not skip the shopping phase", func(t *testing.T) {
		o := acceptedOrder(t)

		err := o.MarkOutForDelivery(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("delivered order should reject further transitions", func(t *testing.T) {
		o := acceptedOrder(t)
		vendorID := kernel.NewUUID()
		require.NoError(t, o.StartShopping(vendorID))
		require.NoError(t, o.MarkOutForDelivery(vendorID))
		require.NoError(t, o.MarkDelivered(vendorID))
		historyLen := len(o.StatusHistory())

		require.ErrorIs(t, o.StartShopping(vendorID), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.MarkDelivered(vendorID), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Accept(kernel.NewUUID()), errs.ErrInvalidTransition)

		assert.Len(t, o.StatusHistory(), historyLen)
	})
}

func TestOrder_AdminOverride(t *testing.T) {
	t.Run("should bypass the guard from any non-terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 500)
		require.NoError(t, o.Accept(kernel.NewUUID()))
		require.NoError(t, o.StartShopping(kernel.NewUUID()))

		adminID := kernel.NewUUID()
		require.NoError(t, o.AdminOverride(order.CancelledByVendor, "vendor unreachable", adminID))

		assert.Equal(t, order.CancelledByVendor, o.Status())
		history := o.StatusHistory()
		last := history[len(history)-1]
		assert.Equal(t, order.RoleAdmin, last.ChangedBy())
		assert.Equal(t, "vendor unreachable", last.Reason())
	})

	t.Run("should block non-admin transitions after an override to terminal", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminOverride(order.CancelledByVendor, "fraud review", kernel.NewUUID()))

		require.ErrorIs(t, o.RejectByVendor("too late", kernel.NewUUID()), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Accept(kernel.NewUUID()), errs.ErrInvalidTransition)
	})

	t.Run("should allow a status outside the table", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AdminOverride(order.Status("held_for_review"), "manual check", kernel.NewUUID()))

		assert.Equal(t, order.Status("held_for_review"), o.Status())
		assert.False(t, o.Status().IsRecognized())
	})

	t.Run("should move an overridden order back into the table", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminOverride(order.Status("held_for_review"), "manual check", kernel.NewUUID()))

		require.NoError(t, o.AdminOverride(order.PendingVendorConfirmation, "check passed", kernel.NewUUID()))

		require.NoError(t, o.RejectByVendor("out of stock", kernel.NewUUID()))
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdminOverride(order.Shopping, "", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round-trip an order through restore", func(t *testing.T) {
		o := newTestOrder(t)
		confirmTestOrder(t, o, 600)

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:                    o.ID(),
			CustomerID:            o.CustomerID(),
			VendorID:              o.VendorID(),
			DeliveryAddress:       o.DeliveryAddress(),
			Status:                o.Status(),
			RequestedItems:        o.RequestedItems(),
			ConfirmedItems:        o.VendorConfirmedItems(),
			InitialOrderCost:      o.InitialOrderCost(),
			DeliveryFee:           o.DeliveryFee(),
			ProposedItemTotalCost: o.VendorProposedItemTotalCost(),
			ProposedTotalCost:     o.VendorProposedTotalCost(),
			StatusHistory:         o.StatusHistory(),
			CreatedAt:             o.CreatedAt(),
			UpdatedAt:             o.UpdatedAt(),
			Version:               o.Version(),
		})

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, o.VendorProposedTotalCost().Amount(), restored.VendorProposedTotalCost().Amount())
		assert.Len(t, restored.StatusHistory(), 2)
	})

	t.Run("should restore an unrecognized override status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminOverride(order.Status("held_for_review"), "manual check", kernel.NewUUID()))

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               o.ID(),
			CustomerID:       o.CustomerID(),
			VendorID:         o.VendorID(),
			DeliveryAddress:  o.DeliveryAddress(),
			Status:           o.Status(),
			RequestedItems:   o.RequestedItems(),
			InitialOrderCost: o.InitialOrderCost(),
			DeliveryFee:      o.DeliveryFee(),
			StatusHistory:    o.StatusHistory(),
			CreatedAt:        o.CreatedAt(),
			UpdatedAt:        o.UpdatedAt(),
			Version:          o.Version(),
		})

		require.NoError(t, err)
		assert.Equal(t, order.Status("held_for_review"), restored.Status())
	})

	t.Run("should fail without history", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               o.ID(),
			CustomerID:       o.CustomerID(),
			VendorID:         o.VendorID(),
			DeliveryAddress:  o.DeliveryAddress(),
			Status:           o.Status(),
			RequestedItems:   o.RequestedItems(),
			InitialOrderCost: o.InitialOrderCost(),
			DeliveryFee:      o.DeliveryFee(),
			CreatedAt:        o.CreatedAt(),
			UpdatedAt:        o.UpdatedAt(),
			Version:          o.Version(),
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
