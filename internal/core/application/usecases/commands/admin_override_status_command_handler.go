package commands

import (
	"context"
)

// AdminOverrideStatusCommandHandler applies administrative status overrides.
// The override is audited like any other transition: a history entry with the
// admin role, the acting user and the reason, plus an outbox notification.
type AdminOverrideStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdminOverrideStatusCommandHandler creates a handler for status overrides.
func NewAdminOverrideStatusCommandHandler(uowFactory OrderUoWFactory) AdminOverrideStatusCommandHandler {
	return AdminOverrideStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
func (h *AdminOverrideStatusCommandHandler) Handle(ctx context.Context, cmd AdminOverrideStatusCommand) error {
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

	if err = orderAggregate.AdminOverride(cmd.NewStatus(), cmd.Reason(), cmd.AdminUserID()); err != nil {
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
