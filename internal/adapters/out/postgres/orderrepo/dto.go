// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Requested items, confirmed items and the status history live in child
// tables keyed by (order_id, seq); seq preserves insertion order.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	VendorID        uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	Status          string `gorm:"index"`

	InitialOrderCost         int64
	DeliveryFee              int64
	ProposedItemTotalCost    *int64
	ProposedTotalCost        *int64
	FinalAgreedItemTotalCost *int64
	FinalAgreedTotalCost     *int64

	VendorOverallNote     string
	VendorRejectionReason string
	UserRejectionReason   string

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int64

	RequestedItems []RequestedItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	ConfirmedItems []ConfirmedItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	StatusHistory  []StatusHistoryDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RequestedItemDTO is one line of the customer's original shopping list.
// Rows are immutable after order creation.
type RequestedItemDTO struct {
	OrderID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq                    int       `gorm:"primaryKey"`
	ItemID                 string
	Name                   string
	Quantity               int
	Unit                   string
	OriginalEstimatedPrice int64
}

// TableName specifies the database table name for requested item lines.
func (RequestedItemDTO) TableName() string {
	return "order_requested_items"
}

// ConfirmedItemDTO is one line of the vendor's confirmation. OriginalPrice is
// NULL for vendor-introduced lines.
type ConfirmedItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq            int       `gorm:"primaryKey"`
	ItemID         string
	Name           string
	Quantity       int
	Unit           string
	OriginalPrice  *int64
	ConfirmedPrice int64
	VendorNote     string
	Availability   string
}

// TableName specifies the database table name for confirmed item lines.
func (ConfirmedItemDTO) TableName() string {
	return "order_confirmed_items"
}

// StatusHistoryDTO is one append-only audit record of a status change.
type StatusHistoryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    string
	ChangedAt time.Time
	ChangedBy string
	UserID    *uuid.UUID `gorm:"type:uuid"`
	Reason    string
}

// TableName specifies the database table name for status history records.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// child rows included.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          aggregate.Status().String(),

		InitialOrderCost:         aggregate.InitialOrderCost().Amount(),
		DeliveryFee:              aggregate.DeliveryFee().Amount(),
		ProposedItemTotalCost:    moneyToAmount(aggregate.VendorProposedItemTotalCost()),
		ProposedTotalCost:        moneyToAmount(aggregate.VendorProposedTotalCost()),
		FinalAgreedItemTotalCost: moneyToAmount(aggregate.FinalAgreedItemTotalCost()),
		FinalAgreedTotalCost:     moneyToAmount(aggregate.FinalAgreedTotalCost()),

		VendorOverallNote:     aggregate.VendorOverallNote(),
		VendorRejectionReason: aggregate.VendorRejectionReason(),
		UserRejectionReason:   aggregate.UserRejectionReason(),

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
	}

	for seq, item := range aggregate.RequestedItems() {
		dto.RequestedItems = append(dto.RequestedItems, RequestedItemDTO{
			OrderID:                orderID,
			Seq:                    seq,
			ItemID:                 item.ItemID(),
			Name:                   item.Name(),
			Quantity:               item.Quantity(),
			Unit:                   item.Unit(),
			OriginalEstimatedPrice: item.OriginalEstimatedPrice().Amount(),
		})
	}

	for seq, item := range aggregate.VendorConfirmedItems() {
		dto.ConfirmedItems = append(dto.ConfirmedItems, ConfirmedItemDTO{
			OrderID:        orderID,
			Seq:            seq,
			ItemID:         item.ItemID(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			Unit:           item.Unit(),
			OriginalPrice:  moneyToAmount(item.OriginalPrice()),
			ConfirmedPrice: item.ConfirmedPrice().Amount(),
			VendorNote:     item.VendorNote(),
			Availability:   item.Availability().String(),
		})
	}

	for seq, entry := range aggregate.StatusHistory() {
		var userID *uuid.UUID
		if id := entry.UserID(); id != nil {
			raw := id.Bytes()
			userID = &raw
		}

		dto.StatusHistory = append(dto.StatusHistory, StatusHistoryDTO{
			OrderID:   orderID,
			Seq:       seq,
			Status:    entry.Status().String(),
			ChangedAt: entry.Timestamp(),
			ChangedBy: entry.ChangedBy().String(),
			UserID:    userID,
			Reason:    entry.Reason(),
		})
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder. Child rows must already be loaded in seq order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	initialCost, err := kernel.NewMoney(dto.InitialOrderCost)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	proposedItemTotal, err := amountToMoney(dto.ProposedItemTotalCost)
	if err != nil {
		return nil, err
	}
	proposedTotal, err := amountToMoney(dto.ProposedTotalCost)
	if err != nil {
		return nil, err
	}
	finalItemTotal, err := amountToMoney(dto.FinalAgreedItemTotalCost)
	if err != nil {
		return nil, err
	}
	finalTotal, err := amountToMoney(dto.FinalAgreedTotalCost)
	if err != nil {
		return nil, err
	}

	requestedItems := make([]order.RequestedItem, 0, len(dto.RequestedItems))
	for _, itemDTO := range dto.RequestedItems {
		price, priceErr := kernel.NewMoney(itemDTO.OriginalEstimatedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewRequestedItem(
			itemDTO.ItemID, itemDTO.Name, itemDTO.Quantity, itemDTO.Unit, price)
		if itemErr != nil {
			return nil, itemErr
		}
		requestedItems = append(requestedItems, item)
	}

	confirmedItems := make([]order.ConfirmedItem, 0, len(dto.ConfirmedItems))
	for _, itemDTO := range dto.ConfirmedItems {
		originalPrice, priceErr := amountToMoney(itemDTO.OriginalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		confirmedPrice, priceErr := kernel.NewMoney(itemDTO.ConfirmedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewConfirmedItem(
			itemDTO.ItemID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.Unit,
			originalPrice,
			confirmedPrice,
			itemDTO.VendorNote,
			order.AvailabilityStatus(itemDTO.Availability),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		confirmedItems = append(confirmedItems, item)
	}

	history := make([]order.StatusHistoryEntry, 0, len(dto.StatusHistory))
	for _, entryDTO := range dto.StatusHistory {
		var userID *kernel.UUID
		if entryDTO.UserID != nil {
			uid, uidErr := kernel.UUIDFromBytes((*entryDTO.UserID)[:])
			if uidErr != nil {
				return nil, uidErr
			}
			userID = &uid
		}

		entry, entryErr := order.NewStatusHistoryEntry(
			order.Status(entryDTO.Status),
			entryDTO.ChangedAt,
			order.Role(entryDTO.ChangedBy),
			userID,
			entryDTO.Reason,
		)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		CustomerID:      customerID,
		VendorID:        vendorID,
		DeliveryAddress: dto.DeliveryAddress,

		Status:         order.Status(dto.Status),
		RequestedItems: requestedItems,
		ConfirmedItems: confirmedItems,

		InitialOrderCost:         initialCost,
		DeliveryFee:              deliveryFee,
		ProposedItemTotalCost:    proposedItemTotal,
		ProposedTotalCost:        proposedTotal,
		FinalAgreedItemTotalCost: finalItemTotal,
		FinalAgreedTotalCost:     finalTotal,

		VendorOverallNote:     dto.VendorOverallNote,
		VendorRejectionReason: dto.VendorRejectionReason,
		UserRejectionReason:   dto.UserRejectionReason,

		StatusHistory: history,

		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		Version:   dto.Version,
	})
}

func moneyToAmount(money *kernel.Money) *int64 {
	if money == nil {
		return nil
	}
	amount := money.Amount()
	return &amount
}

func amountToMoney(amount *int64) (*kernel.Money, error) {
	if amount == nil {
		return nil, nil
	}
	money, err := kernel.NewMoney(*amount)
	if err != nil {
		return nil, err
	}
	return &money, nil
}
