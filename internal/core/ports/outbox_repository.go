package ports

import "context"

// OutboxMessage is one notification awaiting publication. Messages are
// written in the same transaction as the state change they describe, so a
// committed transition always has its notification on record even when the
// broker is down.
type OutboxMessage struct {
	EventID string
	Key     string
	Payload []byte
}

// OutboxRepository defines the persistence contract for pending notifications.
type OutboxRepository interface {
	// Add stores a message for later publication by the relay.
	Add(ctx context.Context, message OutboxMessage) error
}

// OutboxRelayStore is the relay's view of the outbox: drain pending messages
// and mark them sent once the broker accepted them. Publication is
// at-least-once; a crash between publish and MarkSent redelivers.
type OutboxRelayStore interface {
	// FetchPending returns up to limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records the given messages as published.
	MarkSent(ctx context.Context, eventIDs []string) error
}

// MessagePublisher sends an outbox message to the message broker.
type MessagePublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
