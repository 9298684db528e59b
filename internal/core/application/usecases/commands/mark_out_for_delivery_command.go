package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand represents the vendor dispatching a shopped
// order to the customer.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to move a shopped order into
// the delivery stage.
func NewMarkOutForDeliveryCommand(orderID, vendorUserID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	deliveryCommand := MarkOutForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		vendorUserID.Validate(),
	); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	deliveryCommand.orderID = orderID
	deliveryCommand.vendorUserID = vendorUserID
	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order going out for delivery.
func (c MarkOutForDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorUserID returns the identifier of the acting vendor user.
func (c MarkOutForDeliveryCommand) VendorUserID() kernel.UUID {
	return c.vendorUserID
}
