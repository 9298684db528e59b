package queries

import (
	"context"
	"database/sql"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its items and history
// straight from the database, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readOrderRow(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.RequestedItems, err = h.readRequestedItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.VendorConfirmedItems, err = h.readConfirmedItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.StatusHistory, err = readHistory(ctx, h.db, query.OrderID(), "ASC"); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readOrderRow(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vendor_id,
			delivery_address,
			status,
			initial_order_cost,
			delivery_fee,
			proposed_item_total_cost,
			proposed_total_cost,
			final_agreed_item_total_cost,
			final_agreed_total_cost,
			vendor_overall_note,
			vendor_rejection_reason,
			user_rejection_reason,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var response GetOrderQueryResponse
	var id, customerID, vendorID uuid.UUID
	var proposedItemTotal, proposedTotal, finalItemTotal, finalTotal sql.NullInt64

	err := row.Scan(
		&id,
		&customerID,
		&vendorID,
		&response.DeliveryAddress,
		&response.Status,
		&response.InitialOrderCost,
		&response.DeliveryFee,
		&proposedItemTotal,
		&proposedTotal,
		&finalItemTotal,
		&finalTotal,
		&response.VendorOverallNote,
		&response.VendorRejectionReason,
		&response.UserRejectionReason,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.VendorProposedItemTotalCost = nullableAmount(proposedItemTotal)
	response.VendorProposedTotalCost = nullableAmount(proposedTotal)
	response.FinalAgreedItemTotalCost = nullableAmount(finalItemTotal)
	response.FinalAgreedTotalCost = nullableAmount(finalTotal)
	return response, nil
}

func (h GetOrderQueryHandler) readRequestedItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]RequestedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			quantity,
			unit,
			original_estimated_price
		FROM order_requested_items
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]RequestedItemResponse, 0)
	for rows.Next() {
		var item RequestedItemResponse
		if err = rows.Scan(
			&item.ItemID,
			&item.Name,
			&item.Quantity,
			&item.Unit,
			&item.OriginalEstimatedPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readConfirmedItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]ConfirmedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			quantity,
			unit,
			original_price,
			confirmed_price,
			vendor_note,
			availability
		FROM order_confirmed_items
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ConfirmedItemResponse, 0)
	for rows.Next() {
		var item ConfirmedItemResponse
		var originalPrice sql.NullInt64
		if err = rows.Scan(
			&item.ItemID,
			&item.Name,
			&item.Quantity,
			&item.Unit,
			&originalPrice,
			&item.ConfirmedPrice,
			&item.VendorNote,
			&item.Availability,
		); err != nil {
			return nil, err
		}
		item.OriginalPrice = nullableAmount(originalPrice)
		items = append(items, item)
	}

	return items, rows.Err()
}

// readHistory is shared with the history query; direction is "ASC" or "DESC".
func readHistory(
	ctx context.Context,
	db *gorm.DB,
	orderID kernel.UUID,
	direction string,
) ([]StatusHistoryEntryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_at,
			changed_by,
			user_id,
			reason
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY seq `+direction,
		orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryEntryResponse, 0)
	for rows.Next() {
		var entry StatusHistoryEntryResponse
		var userID uuid.NullUUID
		if err = rows.Scan(
			&entry.Status,
			&entry.Timestamp,
			&entry.ChangedBy,
			&userID,
			&entry.Reason,
		); err != nil {
			return nil, err
		}
		if userID.Valid {
			id, idErr := kernel.UUIDFromBytes(userID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.UserID = &id
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func nullableAmount(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	amount := value.Int64
	return &amount
}
