package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full persisted shape of a single order:
// business fields, both item collections and the audit history.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	orderView, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", orderView.ID, orderView.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestedItemResponse is one line of the customer's original shopping list.
type RequestedItemResponse struct {
	ItemID                 string
	Name                   string
	Quantity               int
	Unit                   string
	OriginalEstimatedPrice int64
}

// ConfirmedItemResponse is one line of the vendor's confirmation.
// OriginalPrice is nil for vendor-introduced lines.
type ConfirmedItemResponse struct {
	ItemID         string
	Name           string
	Quantity       int
	Unit           string
	OriginalPrice  *int64
	ConfirmedPrice int64
	VendorNote     string
	Availability   string
}

// StatusHistoryEntryResponse is one audit record of a status change.
type StatusHistoryEntryResponse struct {
	Status    string
	Timestamp time.Time
	ChangedBy string
	UserID    *kernel.UUID
	Reason    string
}

// GetOrderQueryResponse is the full read model of an order. Monetary values
// are minor currency units; optional costs are nil until the workflow stage
// that produces them.
type GetOrderQueryResponse struct {
	ID                          kernel.UUID
	CustomerID                  kernel.UUID
	VendorID                    kernel.UUID
	DeliveryAddress             string
	Status                      string
	RequestedItems              []RequestedItemResponse
	VendorConfirmedItems        []ConfirmedItemResponse
	InitialOrderCost            int64
	DeliveryFee                 int64
	VendorProposedItemTotalCost *int64
	VendorProposedTotalCost     *int64
	FinalAgreedItemTotalCost    *int64
	FinalAgreedTotalCost        *int64
	VendorOverallNote           string
	VendorRejectionReason       string
	UserRejectionReason         string
	StatusHistory               []StatusHistoryEntryResponse
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
	Version                     int64
}
