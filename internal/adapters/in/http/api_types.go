package http

import (
	"time"

	"grocery/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line of the shopping list in an order submission.
type NewOrderItem struct {
	ItemID                 string `json:"itemId"`
	Name                   string `json:"name"`
	Quantity               int    `json:"quantity"`
	Unit                   string `json:"unit"`
	OriginalEstimatedPrice int64  `json:"originalEstimatedPrice"`
}

// NewOrder is the request body for POST /api/v1/orders. Monetary values are
// minor currency units.
type NewOrder struct {
	CustomerID      string         `json:"customerId"`
	VendorID        string         `json:"vendorId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Items           []NewOrderItem `json:"items"`
	DeliveryFee     int64          `json:"deliveryFee"`
}

// OrderCreated is the response body for a successful order submission.
type OrderCreated struct {
	ID string `json:"id"`
}

// ItemAdjustment is one per-line adjustment in a vendor confirmation.
// ConfirmedPrice is required unless the line is marked unavailable. For
// substitutions and vendor-introduced lines, Name (and for new lines Quantity
// and Unit) describe the replacement.
type ItemAdjustment struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name,omitempty"`
	Quantity       int    `json:"quantity,omitempty"`
	Unit           string `json:"unit,omitempty"`
	Availability   string `json:"availability"`
	ConfirmedPrice *int64 `json:"confirmedPrice,omitempty"`
	Note           string `json:"note,omitempty"`
}

// ConfirmOrder is the request body for POST /api/v1/orders/{id}/confirm.
type ConfirmOrder struct {
	VendorUserID string           `json:"vendorUserId"`
	Adjustments  []ItemAdjustment `json:"adjustments,omitempty"`
	OverallNote  string           `json:"overallNote,omitempty"`
}

// RejectOrder is the request body for POST /api/v1/orders/{id}/reject.
// Role selects the rejection path: "vendor" or "customer".
type RejectOrder struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

// AcceptOrder is the request body for POST /api/v1/orders/{id}/accept.
type AcceptOrder struct {
	CustomerUserID string `json:"customerUserId"`
}

// FulfillmentAction is the request body for the vendor's fulfillment
// progression endpoints.
type FulfillmentAction struct {
	VendorUserID string `json:"vendorUserId"`
}

// StatusOverride is the request body for POST /api/v1/orders/{id}/status.
type StatusOverride struct {
	AdminUserID string `json:"adminUserId"`
	NewStatus   string `json:"newStatus"`
	Reason      string `json:"reason"`
}

// RequestedItem is one shopping-list line in an order view.
type RequestedItem struct {
	ItemID                 string `json:"itemId"`
	Name                   string `json:"name"`
	Quantity               int    `json:"quantity"`
	Unit                   string `json:"unit"`
	OriginalEstimatedPrice int64  `json:"originalEstimatedPrice"`
}

// ConfirmedItem is one vendor-confirmed line in an order view.
type ConfirmedItem struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	OriginalPrice  *int64 `json:"originalPrice,omitempty"`
	ConfirmedPrice int64  `json:"confirmedPrice"`
	VendorNote     string `json:"vendorNote,omitempty"`
	Availability   string `json:"availability"`
}

// HistoryEntry is one audit record in an order's status history.
type HistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ChangedBy string    `json:"changedBy"`
	UserID    *string   `json:"userId,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// Order is the full order view returned by GET /api/v1/orders/{id}.
type Order struct {
	ID                          string          `json:"id"`
	CustomerID                  string          `json:"customerId"`
	VendorID                    string          `json:"vendorId"`
	DeliveryAddress             string          `json:"deliveryAddress"`
	Status                      string          `json:"status"`
	RequestedItems              []RequestedItem `json:"requestedItems"`
	VendorConfirmedItems        []ConfirmedItem `json:"vendorConfirmedItems,omitempty"`
	InitialOrderCost            int64           `json:"initialOrderCost"`
	DeliveryFee                 int64           `json:"deliveryFee"`
	VendorProposedItemTotalCost *int64          `json:"vendorProposedItemTotalCost,omitempty"`
	VendorProposedTotalCost     *int64          `json:"vendorProposedTotalCost,omitempty"`
	FinalAgreedItemTotalCost    *int64          `json:"finalAgreedItemTotalCost,omitempty"`
	FinalAgreedTotalCost        *int64          `json:"finalAgreedTotalCost,omitempty"`
	VendorOverallNote           string          `json:"vendorOverallNote,omitempty"`
	VendorRejectionReason       string          `json:"vendorRejectionReason,omitempty"`
	UserRejectionReason         string          `json:"userRejectionReason,omitempty"`
	StatusHistory               []HistoryEntry  `json:"statusHistory"`
	CreatedAt                   time.Time       `json:"createdAt"`
	UpdatedAt                   time.Time       `json:"updatedAt"`
	Version                     int64           `json:"version"`
}

// OrderSummary is one row of GET /api/v1/orders/active.
type OrderSummary struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	VendorID        string `json:"vendorId"`
	Status          string `json:"status"`
	DeliveryAddress string `json:"deliveryAddress"`
	Version         int64  `json:"version"`
}

func orderFromQuery(view queries.GetOrderQueryResponse) Order {
	requestedItems := make([]RequestedItem, 0, len(view.RequestedItems))
	for _, item := range view.RequestedItems {
		requestedItems = append(requestedItems, RequestedItem(item))
	}

	confirmedItems := make([]ConfirmedItem, 0, len(view.VendorConfirmedItems))
	for _, item := range view.VendorConfirmedItems {
		confirmedItems = append(confirmedItems, ConfirmedItem(item))
	}

	return Order{
		ID:                          view.ID.String(),
		CustomerID:                  view.CustomerID.String(),
		VendorID:                    view.VendorID.String(),
		DeliveryAddress:             view.DeliveryAddress,
		Status:                      view.Status,
		RequestedItems:              requestedItems,
		VendorConfirmedItems:        confirmedItems,
		InitialOrderCost:            view.InitialOrderCost,
		DeliveryFee:                 view.DeliveryFee,
		VendorProposedItemTotalCost: view.VendorProposedItemTotalCost,
		VendorProposedTotalCost:     view.VendorProposedTotalCost,
		FinalAgreedItemTotalCost:    view.FinalAgreedItemTotalCost,
		FinalAgreedTotalCost:        view.FinalAgreedTotalCost,
		VendorOverallNote:           view.VendorOverallNote,
		VendorRejectionReason:       view.VendorRejectionReason,
		UserRejectionReason:         view.UserRejectionReason,
		StatusHistory:               historyFromQuery(view.StatusHistory),
		CreatedAt:                   view.CreatedAt,
		UpdatedAt:                   view.UpdatedAt,
		Version:                     view.Version,
	}
}

func historyFromQuery(entries []queries.StatusHistoryEntryResponse) []HistoryEntry {
	history := make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		var userID *string
		if entry.UserID != nil {
			id := entry.UserID.String()
			userID = &id
		}
		history = append(history, HistoryEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			ChangedBy: entry.ChangedBy,
			UserID:    userID,
			Reason:    entry.Reason,
		})
	}
	return history
}
