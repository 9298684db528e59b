package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrStartShoppingCommandIsNotConstructed = errors.New(
	"StartShoppingCommand must be created via NewStartShoppingCommand constructor",
)

// StartShoppingCommand represents the vendor beginning to shop a confirmed
// order.
type StartShoppingCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShoppingCommand creates a command to move a confirmed order into
// the shopping stage.
func NewStartShoppingCommand(orderID, vendorUserID kernel.UUID) (StartShoppingCommand, error) {
	shoppingCommand := StartShoppingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		vendorUserID.Validate(),
	); err != nil {
		return StartShoppingCommand{}, err
	}

	shoppingCommand.orderID = orderID
	shoppingCommand.vendorUserID = vendorUserID
	return shoppingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShoppingCommand) Validate() error {
	return c.guard.Validate(ErrStartShoppingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being shopped.
func (c StartShoppingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorUserID returns the identifier of the acting vendor user.
func (c StartShoppingCommand) VendorUserID() kernel.UUID {
	return c.vendorUserID
}
