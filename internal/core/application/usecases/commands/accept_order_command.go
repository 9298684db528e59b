package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the customer accepting the vendor's proposal.
// Acceptance freezes the proposed totals as the final agreed costs.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for the customer's acceptance.
func NewAcceptOrderCommand(orderID, customerUserID kernel.UUID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerUserID.Validate(),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	acceptCommand.orderID = orderID
	acceptCommand.customerUserID = customerUserID
	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerUserID returns the identifier of the accepting customer user.
func (c AcceptOrderCommand) CustomerUserID() kernel.UUID {
	return c.customerUserID
}
