package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrRequestedItemsAreRequired = errors.New("at least one requested item is required")
)

// CreateOrderCommand represents a customer handing a shopping list to a vendor.
// Encapsulates the requested item lines, the delivery destination and the fee
// quoted for delivery.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, vendorID,
//	    "12 Baker Street", items, deliveryFee)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s submitted and awaiting vendor confirmation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	vendorID        kernel.UUID
	deliveryAddress string
	requestedItems  []order.RequestedItem
	deliveryFee     kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new grocery order.
// Validates that all identifiers are valid, the delivery address is not empty
// and the shopping list contains at least one well-formed line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	deliveryAddress string,
	requestedItems []order.RequestedItem,
	deliveryFee kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setRequestedItems(requestedItems),
		orderCommand.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the identifier of the vendor receiving the order.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// DeliveryAddress returns the destination address for the order.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// RequestedItems returns a copy of the customer's shopping list.
func (c CreateOrderCommand) RequestedItems() []order.RequestedItem {
	return append([]order.RequestedItem(nil), c.requestedItems...)
}

// DeliveryFee returns the delivery fee quoted at submission time.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setRequestedItems(requestedItems []order.RequestedItem) error {
	if len(requestedItems) == 0 {
		return ErrRequestedItemsAreRequired
	}

	for _, item := range requestedItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.requestedItems = append([]order.RequestedItem(nil), requestedItems...)
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}

	c.deliveryFee = deliveryFee
	return nil
}
