package commands

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// RejectOrderCommandHandler handles both rejection paths of the workflow.
// The actor role on the command selects the transition: vendors reject
// pending requests, customers reject vendor proposals.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	switch cmd.ActorRole() {
	case order.RoleVendor:
		err = orderAggregate.RejectByVendor(cmd.Reason(), cmd.ActorUserID())
	case order.RoleCustomer:
		err = orderAggregate.RejectByUser(cmd.Reason(), cmd.ActorUserID())
	default:
		err = ErrRejectionRoleIsInvalid
	}
	if err != nil {
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
