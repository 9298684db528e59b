package commands

import (
	"context"
)

// StartShoppingCommandHandler moves a confirmed order into "shopping".
type StartShoppingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartShoppingCommandHandler creates a handler for the shopping stage.
func NewStartShoppingCommandHandler(uowFactory OrderUoWFactory) StartShoppingCommandHandler {
	return StartShoppingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-shopping command.
func (h *StartShoppingCommandHandler) Handle(ctx context.Context, cmd StartShoppingCommand) error {
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

	if err = orderAggregate.StartShopping(cmd.VendorUserID()); err != nil {
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
