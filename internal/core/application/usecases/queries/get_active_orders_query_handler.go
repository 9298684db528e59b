package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves all non-terminal orders from the
// database for monitoring and vendor work queues.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Filters by the terminal status set rather than
// the active one so overridden, unrecognized statuses stay visible.
// Results are sorted by creation time for stable output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vendor_id,
			status,
			delivery_address,
			version
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at, id
	`, order.Delivered, order.CancelledByVendor, order.CancelledByUser).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id, customerID, vendorID uuid.UUID

		if err = rows.Scan(
			&id,
			&customerID,
			&vendorID,
			&response.Status,
			&response.DeliveryAddress,
			&response.Version,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
