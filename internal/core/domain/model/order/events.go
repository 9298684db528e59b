package order

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
)

// StatusChangedEvent is raised by the aggregate on every committed transition.
// Handlers persist it to the outbox in the same transaction as the aggregate
// write; the relay publishes it to the other party after commit, so a
// dispatch failure can never roll back a transition.
type StatusChangedEvent struct {
	EventID          kernel.UUID
	OrderID          kernel.UUID
	NewStatus        Status
	ActorRole        Role
	RecipientPartyID kernel.UUID
	OccurredAt       time.Time
}

// newStatusChangedEvent builds the notification for a transition. The
// recipient is the counterparty of the acting role: vendor actions notify the
// customer, everything else notifies the vendor.
func newStatusChangedEvent(o *Order, actor Role, at time.Time) StatusChangedEvent {
	recipient := o.vendorID
	if actor == RoleVendor {
		recipient = o.customerID
	}

	return StatusChangedEvent{
		EventID:          kernel.NewUUID(),
		OrderID:          o.id,
		NewStatus:        o.status,
		ActorRole:        actor,
		RecipientPartyID: recipient,
		OccurredAt:       at,
	}
}
