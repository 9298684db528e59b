package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its requested items and
	// the initial history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition. The write is a compare-and-swap on the
	// aggregate's version: if the stored version differs, the update fails
	// with a concurrency conflict and nothing is applied. Business fields,
	// newly confirmed items and appended history entries are committed
	// together; a concurrent reader never observes a partial transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, fully
	// rehydrated with items and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
