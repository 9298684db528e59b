package commands

import (
	"context"
)

// MarkDeliveredCommandHandler completes an order in delivery, moving it to
// the terminal "delivered" status.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for order completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = orderAggregate.MarkDelivered(cmd.VendorUserID()); err != nil {
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
