package commands

import (
	"context"

	"grocery/internal/core/domain/services"
)

// ConfirmOrderCommandHandler handles the vendor's confirmation of a pending
// order. Runs the item negotiation to derive the confirmed line set and the
// proposed totals, then moves the order to "pending_user_acceptance".
type ConfirmOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	itemNegotiator services.ItemNegotiator
}

// NewConfirmOrderCommandHandler creates a handler for vendor confirmations.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	itemNegotiator services.ItemNegotiator,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory:     uowFactory,
		itemNegotiator: itemNegotiator,
	}
}

// Handle processes the vendor confirmation command.
// Loads the order, negotiates the confirmed item set against the requested
// lines, applies the confirmation and persists the result atomically with
// the customer-facing notification.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	confirmedItems, itemTotal, err := h.itemNegotiator.Negotiate(
		orderAggregate.RequestedItems(),
		cmd.Adjustments(),
	)
	if err != nil {
		return err
	}

	if err = orderAggregate.Confirm(
		confirmedItems,
		itemTotal,
		cmd.OverallNote(),
		cmd.VendorUserID(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = recordNotifications(ctx, uow.OutboxRepository(), orderAggregate.PullEvents()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
