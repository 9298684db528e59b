package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
	ErrRejectionRoleIsInvalid    = errors.New("rejection is available to the vendor and the customer only")
)

// RejectOrderCommand represents either party declining the order: the vendor
// rejecting the incoming request, or the customer rejecting the vendor's
// proposal. Both paths are terminal and both require a reason.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorRole   order.Role
	actorUserID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a rejection command for the given actor role.
// Only RoleVendor and RoleCustomer may reject; the reason is mandatory.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	actorRole order.Role,
	actorUserID kernel.UUID,
	reason string,
) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setActorRole(actorRole),
		rejectCommand.setActorUserID(actorUserID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the role of the rejecting party.
func (c RejectOrderCommand) ActorRole() order.Role {
	return c.actorRole
}

// ActorUserID returns the identifier of the rejecting user.
func (c RejectOrderCommand) ActorUserID() kernel.UUID {
	return c.actorUserID
}

// Reason returns the mandatory rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setActorRole(actorRole order.Role) error {
	if actorRole != order.RoleVendor && actorRole != order.RoleCustomer {
		return ErrRejectionRoleIsInvalid
	}

	c.actorRole = actorRole
	return nil
}

func (c *RejectOrderCommand) setActorUserID(actorUserID kernel.UUID) error {
	if err := actorUserID.Validate(); err != nil {
		return err
	}

	c.actorUserID = actorUserID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
