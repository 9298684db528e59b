package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the vendor completing an order at the
// customer's door. Delivery is a terminal, successful outcome.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete an order.
func NewMarkDeliveredCommand(orderID, vendorUserID kernel.UUID) (MarkDeliveredCommand, error) {
	deliveredCommand := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		vendorUserID.Validate(),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	deliveredCommand.orderID = orderID
	deliveredCommand.vendorUserID = vendorUserID
	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the completed order.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorUserID returns the identifier of the acting vendor user.
func (c MarkDeliveredCommand) VendorUserID() kernel.UUID {
	return c.vendorUserID
}
