package commands

import (
	"context"
)

// MarkOutForDeliveryCommandHandler moves a shopped order into
// "out_for_delivery".
type MarkOutForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOutForDeliveryCommandHandler creates a handler for the dispatch stage.
func NewMarkOutForDeliveryCommandHandler(uowFactory OrderUoWFactory) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the out-for-delivery command.
func (h *MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
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

	if err = orderAggregate.MarkOutForDelivery(cmd.VendorUserID()); err != nil {
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
