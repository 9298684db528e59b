package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var (
	ErrAdminOverrideStatusCommandIsNotConstructed = errors.New(
		"AdminOverrideStatusCommand must be created via NewAdminOverrideStatusCommand constructor",
	)
	ErrOverrideReasonIsRequired = errors.New("override reason is required")
	ErrOverrideStatusIsRequired = errors.New("override status is required")
)

// AdminOverrideStatusCommand represents a support operator forcing an order
// into an arbitrary status. The override bypasses the transition table, works
// from terminal states and accepts statuses the workflow does not define, so
// the reason is mandatory and lands in the audit history.
type AdminOverrideStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	adminUserID kernel.UUID
	newStatus   order.Status
	reason      string

	guard guard.ConstructorGuard
}

// NewAdminOverrideStatusCommand creates an override command. The target
// status only needs to be non-empty; unrecognized values are allowed.
func NewAdminOverrideStatusCommand(
	orderID kernel.UUID,
	adminUserID kernel.UUID,
	newStatus order.Status,
	reason string,
) (AdminOverrideStatusCommand, error) {
	overrideCommand := AdminOverrideStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		overrideCommand.setOrderID(orderID),
		overrideCommand.setAdminUserID(adminUserID),
		overrideCommand.setNewStatus(newStatus),
		overrideCommand.setReason(reason),
	); err != nil {
		return AdminOverrideStatusCommand{}, err
	}

	return overrideCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminOverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdminOverrideStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being overridden.
func (c AdminOverrideStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminUserID returns the identifier of the acting administrator.
func (c AdminOverrideStatusCommand) AdminUserID() kernel.UUID {
	return c.adminUserID
}

// NewStatus returns the target status of the override.
func (c AdminOverrideStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Reason returns the mandatory override reason.
func (c AdminOverrideStatusCommand) Reason() string {
	return c.reason
}

func (c *AdminOverrideStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdminOverrideStatusCommand) setAdminUserID(adminUserID kernel.UUID) error {
	if err := adminUserID.Validate(); err != nil {
		return err
	}

	c.adminUserID = adminUserID
	return nil
}

func (c *AdminOverrideStatusCommand) setNewStatus(newStatus order.Status) error {
	if newStatus == order.Unknown {
		return ErrOverrideStatusIsRequired
	}

	c.newStatus = newStatus
	return nil
}

func (c *AdminOverrideStatusCommand) setReason(reason string) error {
	if reason == "" {
		return ErrOverrideReasonIsRequired
	}

	c.reason = reason
	return nil
}
