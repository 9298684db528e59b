package queries

import (
	"context"
	"database/sql"
	"errors"

	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's status history from the
// database in reverse chronological order.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history reads.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist; an existing order always has at least its creation entry.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]StatusHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT id FROM orders WHERE id = ?`, query.OrderID().Bytes()).Row()
	var id any
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	return readHistory(ctx, h.db, query.OrderID(), "DESC")
}
