package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a vendor responding to a pending order with
// per-line adjustments: price corrections, unavailable lines, substitutions
// and vendor-introduced lines. Lines without an adjustment are confirmed as
// requested.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorUserID kernel.UUID
	adjustments  []order.ItemAdjustment
	overallNote  string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command for the vendor's confirmation
// response. Adjustments may be empty: that confirms every requested line at
// its original price. The overall note is optional.
func NewConfirmOrderCommand(
	orderID kernel.UUID,
	vendorUserID kernel.UUID,
	adjustments []order.ItemAdjustment,
	overallNote string,
) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setVendorUserID(vendorUserID),
		confirmCommand.setAdjustments(adjustments),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	confirmCommand.overallNote = overallNote
	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorUserID returns the identifier of the acting vendor user.
func (c ConfirmOrderCommand) VendorUserID() kernel.UUID {
	return c.vendorUserID
}

// Adjustments returns a copy of the vendor's per-line adjustments.
func (c ConfirmOrderCommand) Adjustments() []order.ItemAdjustment {
	return append([]order.ItemAdjustment(nil), c.adjustments...)
}

// OverallNote returns the vendor's optional note covering the whole order.
func (c ConfirmOrderCommand) OverallNote() string {
	return c.overallNote
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setVendorUserID(vendorUserID kernel.UUID) error {
	if err := vendorUserID.Validate(); err != nil {
		return err
	}

	c.vendorUserID = vendorUserID
	return nil
}

func (c *ConfirmOrderCommand) setAdjustments(adjustments []order.ItemAdjustment) error {
	for _, adjustment := range adjustments {
		if err := adjustment.Validate(); err != nil {
			return err
		}
	}

	c.adjustments = append([]order.ItemAdjustment(nil), adjustments...)
	return nil
}
