package commands

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order submission.
// Builds a new order aggregate in "pending_vendor_confirmation" status and
// records the submission notification in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, vendorID,
//	    "12 Baker Street", items, deliveryFee)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// Order is now awaiting vendor confirmation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Computes the initial order cost from the requested lines and the delivery
// fee, persists the aggregate and queues the creation notification atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.VendorID(),
		cmd.DeliveryAddress(),
		cmd.RequestedItems(),
		cmd.DeliveryFee(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = recordNotifications(ctx, uow.OutboxRepository(), newOrder.PullEvents()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
