package outboxrepo

import (
	"context"
	"time"

	"grocery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements both sides of the outbox contract:
// transactional Add for command handlers and FetchPending/MarkSent for the
// relay.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores a message for later publication. Runs on the caller's
// connection, so inside a unit of work it joins the open transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	eventID, err := uuid.Parse(message.EventID)
	if err != nil {
		return err
	}

	dto := MessageDTO{
		ID:        eventID,
		Key:       message.Key,
		Payload:   message.Payload,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending returns up to limit unsent messages, oldest first.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			EventID: dto.ID.String(),
			Key:     dto.Key,
			Payload: dto.Payload,
		})
	}
	return messages, nil
}

// MarkSent records the given messages as published.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("sent_at", &now).Error
}
