// Package outboxrepo persists notification messages alongside the state
// changes that produced them, implementing the transactional outbox pattern.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// MessageDTO represents one stored notification. SentAt is NULL until the
// relay publishes the message to the broker.
type MessageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string
	Payload   []byte    `gorm:"type:bytea"`
	CreatedAt time.Time `gorm:"index"`
	SentAt    *time.Time
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox"
}
