package commands

import (
	"context"
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// statusChangedPayload is the wire shape consumed by the notification
// dispatcher. Field names are part of the outbound contract.
type statusChangedPayload struct {
	OrderID          string    `json:"orderId"`
	NewStatus        string    `json:"newStatus"`
	ActorRole        string    `json:"actorRole"`
	RecipientPartyID string    `json:"recipientPartyId"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// recordNotifications writes the aggregate's pending status-changed events to
// the outbox. It runs inside the transition's transaction; actual delivery
// happens after commit, from the relay.
func recordNotifications(
	ctx context.Context,
	outbox ports.OutboxRepository,
	events []order.StatusChangedEvent,
) error {
	for _, event := range events {
		payload, err := json.Marshal(statusChangedPayload{
			OrderID:          event.OrderID.String(),
			NewStatus:        event.NewStatus.String(),
			ActorRole:        event.ActorRole.String(),
			RecipientPartyID: event.RecipientPartyID.String(),
			OccurredAt:       event.OccurredAt,
		})
		if err != nil {
			return err
		}

		if err = outbox.Add(ctx, ports.OutboxMessage{
			EventID: event.EventID.String(),
			Key:     event.OrderID.String(),
			Payload: payload,
		}); err != nil {
			return err
		}
	}

	return nil
}
